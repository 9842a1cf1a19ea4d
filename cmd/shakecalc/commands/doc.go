// Package commands defines the shakecalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)   Run the keypad in the terminal
//   - eval     Evaluate an expression and print the result
//   - press    Press keys against the persisted display and print it
//   - last     Print the persisted display
//   - clear    Reset the persisted display to 0
//   - shake    Replay accelerometer samples against the persisted display
//   - serve    Consume the configured motion source without a keypad
//   - init     Write a default config.yaml
//
// # Implementation
//
// The root command resolves the home directory, loads config.yaml, applies
// flag overrides and builds the logger before any subcommand runs. Commands
// that touch the display build an app.Wire, restore the persisted value, and
// pause the calculator before exiting so the display is saved the same way
// the keypad saves it when it loses focus.
package commands
