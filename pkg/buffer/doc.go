// Package buffer implements the fixed-capacity working buffer that holds
// one template at a time, and the in-place substitution engine that
// rewrites it.
//
// The buffer is allocated once per run and reused for every template:
// Load fills it, Substitute is applied once per token, and WriteTo emits
// the live region. Substitution is a single left-to-right pass. Text that
// was just inserted is not scanned again, so a replacement containing its
// own token does not recurse:
//
//	b := buffer.New(64)
//	_ = b.SetString("path=@prefix@/bin")
//	n, err := b.Substitute("@prefix@", "/opt/app")
//	// b.String() == "path=/opt/app/bin", n == 1
package buffer
