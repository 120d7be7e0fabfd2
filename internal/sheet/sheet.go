// Package sheet holds the in-memory state of uploaded sheets and the
// parse-and-validate pipeline that populates it.
package sheet

import (
	"time"

	"secview/domain/school"
)

// Status is the lifecycle state of an uploaded sheet.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Sheet is the state of one upload. Rows stay empty unless the sheet is
// ready; Err is the user-facing message when it failed.
type Sheet struct {
	ID        string
	Filename  string
	Status    Status
	Err       string
	Rows      []school.Row
	Summary   school.Summary
	CreatedAt time.Time
}

// Status predicates, mainly for templates.

func (s Sheet) Loading() bool { return s.Status == StatusLoading }
func (s Sheet) Ready() bool   { return s.Status == StatusReady }
func (s Sheet) Failed() bool  { return s.Status == StatusFailed }
