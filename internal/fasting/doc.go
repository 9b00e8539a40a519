// Package fasting holds the session lifecycle: the open-fast slot, the ordered
// log of completed fasts, edit validation, and the text formats used to show
// and edit them.
package fasting
