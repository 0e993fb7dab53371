// Package validator checks field-level constraints of an already decoded
// request document and accumulates human-readable failures keyed by
// JSON-path-like locations, instead of stopping at the first problem.
//
// # Building blocks
//
//   - Path          : location of a field, e.g. "options.fields[3]"
//   - Errors        : append-only sink of failures for one validation pass
//   - MessagePolicy : produces the failure texts (EnglishPolicy by default,
//     TranslatedPolicy for catalogs)
//   - Check/Opt/Req : the validation functions
//
// # Shapes
//
// Every predicate comes in up to three shapes that differ only in how an
// absent (nil) value is treated:
//
//	CheckX(e, loc, v, ...)   v cannot be absent; only the predicate is tested
//	OptX(e, loc, &v, ...)    nil is valid and records nothing
//	ReqX(e, loc, &v, ...)    nil records a null failure and skips the predicate
//
// Req functions and CheckNotNull/CheckNotBlank return the dereferenced value
// together with the validity flag, so a true result can be used without a
// second nil check.
//
// String minimums count characters, maximums count UTF-8 bytes.
// Numeric checks are generic over every integer and float width.
//
// # Nested documents
//
// Require, RequireNonEmpty and RequireValid only descend into a container
// once it is known to be present, so the nested block never sees a nil parent:
//
//	errs := validator.NewErrors()
//	validator.ReqLength(errs, "name", req.Name, 3, 24)
//	validator.OptMaxLength(errs, "description", req.Description, 4000)
//	validator.Require(errs, "options", req.Options, func(o Options) {
//	    loc := validator.Path("options").Key("fields")
//	    validator.Each(loc, o.Fields, func(at validator.Path, f string) {
//	        validator.CheckNotBlankString(errs, at, f)
//	    })
//	})
//	if err := errs.Err(); err != nil {
//	    // errs marshals to {"byKey": {...}, "general": [...]}
//	}
//
// # Messages
//
// A sink uses the policy given with WithPolicy, or DefaultPolicy at the time
// it was created. SetDefaultPolicy is a startup-time setting and must not be
// changed while passes are running. Policies are pure and may be shared.
//
// # Concurrency
//
// Errors is not safe for concurrent writers. Give every pass its own sink.
package validator
