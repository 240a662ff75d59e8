package plan

import (
	"fmt"

	"lineq-generator/internal/manifest"
	"lineq-generator/primitive"
)

// FromManifest converts manifest entries into requests. Entries with an
// unknown numeric type are skipped; manifest.Validate reports them.
func FromManifest(f *manifest.File) []Request {
	if f == nil {
		return nil
	}

	reqs := make([]Request, 0, len(f.Inversions))

	for i, inv := range f.Inversions {
		kind, ok := primitive.FromName(inv.Type)
		if !ok {
			continue
		}

		pos := inv.Position
		if pos == "" {
			pos = fmt.Sprintf("inversions[%d]", i)
		}

		reqs = append(reqs, Request{
			Name:        inv.Name,
			Method:      inv.Method,
			Expr:        inv.Expr,
			SolveFor:    inv.SolveFor,
			Target:      inv.Target,
			Kind:        kind,
			Description: inv.Description,
			Position:    pos,
		})
	}

	return reqs
}
