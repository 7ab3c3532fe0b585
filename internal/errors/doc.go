// Package errors provides the structured error type used across rpg-sheet.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC status codes at the transport edge.
//
// # Creating errors
//
//	err := errors.NotFound("sheet not found").WithMeta("sheet_id", id)
//	err := errors.InvalidArgumentf("unknown attribute %q", name)
//
// # Wrapping
//
// Wrap keeps the code of an existing *Error; WrapWithCode replaces it. Both keep
// the cause reachable through Unwrap, so sentinel errors survive wrapping:
//
//	var ErrUnknownSkill = stderrors.New("unknown skill")
//	err := errors.WrapWithCode(ErrUnknownSkill, errors.CodeNotFound, "skill not in catalog")
//	errors.Is(err, ErrUnknownSkill) // true
//	errors.IsNotFound(err)          // true
//
// # Layers
//
// Rules return sentinel-backed errors with a code. Repositories return NotFound
// and wrap storage failures as Internal. Orchestrators validate input with the
// ValidationBuilder. Handlers convert with ToGRPCError.
package errors
