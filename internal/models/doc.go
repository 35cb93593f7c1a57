// Package models defines the core domain models for EverAfter.
//
// # Scoping
//
// A User owns exactly one Wedding. Every other entity except Vendor hangs off
// a Wedding via WeddingID; vendors form a global read-only catalog.
//
// # Representation choices
//
//   - Money fields (TotalBudget, Budgeted, Spent) use decimal.Decimal so
//     budget arithmetic never accumulates float error.
//   - Calendar dates (WeddingDate, DueDate, Appointment.Date) are plain
//     YYYY-MM-DD strings. Appointment time-of-day lives in a separate HH:MM
//     field, which keeps calendar-day matching independent of any time or
//     timezone component.
//   - Timestamps (CreatedAt, UpdatedAt) are Unix seconds assigned by the
//     storage layer.
//
// RSVPStatus, MediaType and CategoryIcon are closed sets; values outside them
// are data-integrity violations, not extension points.
package models
