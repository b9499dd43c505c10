// Package pipeline turns NAME.in templates into NAME files.
//
// Each template is read whole into a fixed-capacity buffer and rewritten
// in place by eight passes, always in this order:
//
//  1. host specific fixed substitutions
//  2. installation path variables (@prefix@, @bindir@, ...)
//  3. environment variables that are set
//  4. program tokens
//  5. header conditionals
//  6. function conditionals
//  7. custom variables
//  8. remaining environment variables, forced to empty when unset
//
// Replacement text is never rescanned within a pass but later passes do
// see it, so a value may carry tokens for a later pass to fill in.
package pipeline
