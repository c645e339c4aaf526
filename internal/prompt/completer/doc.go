// Package completer produces SQL completion candidates: keywords
// always, schema object names when smart completion is enabled.
package completer
