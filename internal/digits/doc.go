// Package digits implements the multi-slot numeric entry used by every
// setting screen.
//
// A [Layout] describes the slots of a field (ranges and separators), how the
// slots group into numbers, and which validators run when a group or the whole
// field is confirmed. An [Entry] is the running state of one field: the
// current digits, the cursor, and the message shown under the field.
package digits
