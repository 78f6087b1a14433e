// Package zrerr defines the structured error codes shared across the
// binary protocol layer and the application runtime.
package zrerr

import "fmt"

// Code identifies a stable, machine-checkable failure reason. Codes are
// never renumbered; new ones are appended.
type Code string

// Binary-layer codes (C1/C2/C3).
const (
	CodeTruncated           Code = "ZR_TRUNCATED"
	CodeMisaligned          Code = "ZR_MISALIGNED"
	CodeLimit               Code = "ZR_LIMIT"
	CodeBadMagic            Code = "ZR_BAD_MAGIC"
	CodeUnsupportedVersion  Code = "ZR_UNSUPPORTED_VERSION"
	CodeSizeMismatch        Code = "ZR_SIZE_MISMATCH"
	CodeInvalidRecord       Code = "ZR_INVALID_RECORD"
	CodeDrawlistTooLarge    Code = "ZRDL_TOO_LARGE"
	CodeDrawlistInternal    Code = "ZRDL_INTERNAL"
)

// Runtime-layer codes (C5/C6/C8).
const (
	CodeInvalidProps       Code = "ZRUI_INVALID_PROPS"
	CodeInvalidState       Code = "ZRUI_INVALID_STATE"
	CodeModeConflict       Code = "ZRUI_MODE_CONFLICT"
	CodeNoRenderMode       Code = "ZRUI_NO_RENDER_MODE"
	CodeProtocolError      Code = "ZRUI_PROTOCOL_ERROR"
	CodeDrawlistBuildError Code = "ZRUI_DRAWLIST_BUILD_ERROR"
	CodeDuplicateKey       Code = "ZRUI_DUPLICATE_KEY"
	CodeDuplicateID        Code = "ZRUI_DUPLICATE_ID"
)

// Error is the structured {code, offset, detail} value every layer in
// this module returns instead of an ad hoc error string.
type Error struct {
	Code   Code
	Offset int64 // -1 when the failure has no byte offset
	Detail string
}

// New builds an Error with no offset.
func New(code Code, detail string) *Error {
	return &Error{Code: code, Offset: -1, Detail: detail}
}

// At builds an Error anchored to a byte offset in a parsed buffer.
func At(code Code, offset int64, detail string) *Error {
	return &Error{Code: code, Offset: offset, Detail: detail}
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("%s@%d: %s", e.Code, e.Offset, e.Detail)
}

// Is allows errors.Is(err, zrerr.New(code, "")) style matching by code only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
