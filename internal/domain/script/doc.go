// Package script renders shell install scripts from catalog entries.
//
// Generation is a pure function over its inputs: no I/O, no clock, no
// randomness. Two calls with identical entries and category subset produce
// byte-identical output, so the result is safe to diff, cache, or hash.
//
// Output layout:
//   - shebang and a fixed header comment
//   - one section per category with matching entries, in the static
//     category declaration order
//   - per entry: the install command, a pacman fallback built from the
//     package name, or a comment when neither is set
package script
