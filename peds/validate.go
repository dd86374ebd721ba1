package peds

import (
	"fmt"

	"github.com/katalvlaran/engraft/frame"
)

// Role names the semantic role a metadata column plays in a computation.
// It appears verbatim in validation error messages so users can tell
// which parameter named the offending column.
type Role string

const (
	// RoleTime marks the numeric timepoint column.
	RoleTime Role = "time"
	// RoleReference marks the categorical donor/reference column.
	RoleReference Role = "reference"
	// RoleSubject marks the categorical subject column.
	RoleSubject Role = "subject"
	// RolePartition marks the categorical donor/recipient partition column
	// used by the bootstrap test.
	RolePartition Role = "partition"
)

// CheckColumn confirms that the named metadata column exists, is not the
// identifier header of the table, and carries the declared type the role
// requires. It returns the column on success. Pure; no side effects.
//
// Failure modes:
//   - ErrColumnIsID     — name equals the metadata identifier header
//   - ErrColumnNotFound — no column of that name
//   - ErrColumnType     — declared type differs from want
func CheckColumn(md *frame.Metadata, name string, role Role, want frame.ColumnType) (frame.Column, error) {
	if name == md.IDHeader() {
		return frame.Column{}, fmt.Errorf(
			"%w: the %s column %q is the identifier header and cannot be used as a column",
			ErrColumnIsID, role, name)
	}
	col, ok := md.Column(name)
	if !ok {
		return frame.Column{}, fmt.Errorf(
			"%w: %s column %q", ErrColumnNotFound, role, name)
	}
	if col.Type() != want {
		return frame.Column{}, fmt.Errorf(
			"%w: %s column %q must be %s, declared %s",
			ErrColumnType, role, name, want, col.Type())
	}

	return col, nil
}
