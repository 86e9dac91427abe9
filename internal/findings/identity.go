package findings

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// NamespaceFinding is the UUID v5 namespace for finding identities,
// derived from "metaqa/finding/v1" under the URL namespace.
var NamespaceFinding = uuid.NewSHA1(uuid.NameSpaceURL, []byte("metaqa/finding/v1"))

// ID derives a deterministic identity for a finding from where it points
// and what it reports. The same issue found twice on the same input
// always gets the same ID, across runs and machines.
func ID(loc metaqa.Locator, recordID, pointer string, issue metaqa.IssueType) uuid.UUID {
	key := strings.Join([]string{
		loc.Shape.String(),
		strings.ToLower(strings.TrimPrefix(loc.Source, "./")),
		strconv.Itoa(loc.Row),
		recordID,
		pointer,
		string(issue),
	}, "\x00")
	return uuid.NewSHA1(NamespaceFinding, []byte(key))
}

// New builds a finding and assigns its ID.
func New(loc metaqa.Locator, recordID, pointer string, issue metaqa.IssueType, level metaqa.IssueLevel, description string) metaqa.Finding {
	return metaqa.Finding{
		ID:          ID(loc, recordID, pointer, issue),
		Locator:     loc,
		RecordID:    recordID,
		Pointer:     pointer,
		IssueType:   issue,
		Level:       level,
		Description: description,
	}
}
