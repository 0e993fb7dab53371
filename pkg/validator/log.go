package validator

import "log/slog"

// LogValue summarises the report for slog: total count, failed locations in
// first-seen order, a per-kind tally and general messages. A nil or empty
// report resolves to an empty group, which handlers omit.
//
//	log.WarnContext(ctx, "request rejected", slog.Any("failures", errs))
func (e *Errors) LogValue() slog.Value {
	if e == nil || e.IsEmpty() {
		return slog.GroupValue()
	}

	attrs := []slog.Attr{
		slog.Int("count", e.Len()),
		slog.Any("fields", e.Fields()),
	}

	if kinds := e.Kinds(); len(kinds) > 0 {
		byKind := make([]slog.Attr, 0, len(kinds))
		for _, k := range AllKinds() {
			if n := kinds[k]; n > 0 {
				byKind = append(byKind, slog.Int(string(k), n))
			}
		}
		attrs = append(attrs, slog.Attr{Key: "kinds", Value: slog.GroupValue(byKind...)})
	}
	if g := e.General(); len(g) > 0 {
		attrs = append(attrs, slog.Any("general", g))
	}

	return slog.GroupValue(attrs...)
}
