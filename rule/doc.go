// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package rule provides a CEL-backed engine for custom validation rules on
environment variable values.

A rule is a CEL expression over a single string variable named "value" that
must evaluate to a boolean. String variables in a typedenv schema may carry
a rule alongside (or instead of) a pattern:

	config := schema.Schema{
	    "LISTEN_ADDR": schema.String(schema.StringOpts{
	        Rule: `value.startsWith("127.") || value.startsWith("[::1]")`,
	    }),
	}

Rules are compiled lazily at parse time, never at schema construction, so a
malformed rule surfaces as a parse failure of the variable rather than a
construction error.

# Error Handling

Compilation errors are returned as structured types with location information:

	r, err := rule.Compile(`value.size( > 3`)
	var compileErr *rule.CompileError
	if errors.As(err, &compileErr) {
	    fmt.Println(compileErr.Source) // the original expression
	    fmt.Println(compileErr.Issues) // line/column/message details
	}

# DoS Protection

The engine bounds expression length (MaxExpressionLength) and caps runtime
evaluation cost, so hostile rule sources cannot stall a process.
*/
package rule
