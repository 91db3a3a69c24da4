// Package models defines the core domain models for billsplit.
//
// # Models
//
//   - Participant: one person's share of a bill, optionally fixed by hand
//   - Draft: the working state of the bill currently being split
//   - Bill: a finalized bill, appended to a session's history
//
// Participants are identified by a small integer ID that is unique within
// one bill and assigned sequentially from 0. Bills are identified by UUID.
//
// # Design Principles
//
// 1. **Plain values**: models carry no behavior beyond copying and summing
// 2. **No pointers between records**: a Bill owns a copy of its participants
// 3. **Zero value is useful**: an empty Draft is the initial state of a session
package models
