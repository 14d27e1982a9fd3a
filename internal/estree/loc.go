package estree

import (
	"github.com/cwbudde/go-jsi/internal/token"
	"github.com/tidwall/gjson"
)

// locOf reads node's `loc.start`/`loc.end` fields into a *token.Location,
// or returns nil if the producer didn't attach one — a location is a
// diagnostic aid, not something the evaluator requires to run.
func locOf(node gjson.Result) *token.Location {
	loc := node.Get("loc")
	if !loc.Exists() {
		return nil
	}
	start := loc.Get("start")
	end := loc.Get("end")
	return &token.Location{
		Start: posOf(start),
		End:   posOf(end),
	}
}

func posOf(p gjson.Result) token.Position {
	return token.Position{
		Line:   int(p.Get("line").Int()),
		Column: int(p.Get("column").Int()),
	}
}
