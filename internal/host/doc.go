// Package host owns the process lifecycle for both deployment shapes.
//
// RunConsole wires the automation client to a console observer and keeps the
// process alive until it is signalled. RunDesktop additionally serves the UI
// bridge and manages windows through a [WindowManager].
package host
