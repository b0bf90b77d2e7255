// Package models defines the core domain models for the chama backend.
//
// # Models
//
//   - Chama: a savings group that members contribute to and borrow from
//   - Member: a person belonging to exactly one chama
//   - Contribution: a deposit by a member into the chama pool
//   - Loan: a member's request to borrow from the pool, subject to approval
//   - User: a dashboard account (admin, treasurer or plain member)
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships are expressed as ID strings (ChamaID, MemberID)
// 2. **Status as a type**: loan status is a LoanStatus with an explicit transition table
// 3. **UTC timestamps**: every time field is stored and compared in UTC
package models
