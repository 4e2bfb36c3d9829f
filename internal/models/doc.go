// Package models defines the core domain models for the member roster.
//
// # Models
//
//   - Member: one person on the roster, identified by a store-assigned ID and a
//     unique contact number
//
// # Design Principles
//
// 1. **Flat records**: a member has no relationships to other entities
// 2. **Store-owned identity**: IDs are issued by the database and never reused
// 3. **Immutable rows**: members are created and deleted, never edited in place
package models
