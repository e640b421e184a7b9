// Package logger wraps zap behind a small context-aware API:
//   - a global sugared logger writing console-formatted lines to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and runtime level configuration,
//   - leveled convenience functions (Debugf, InfoKV, Errorf, etc.).
//
// Services take a context and log through it, so every line carries the
// scope the caller established. Stderr is the only sink: stdout belongs to
// the rewritten text.
package logger
