/*
Package session implements the selection/connection-display controller.

A Session is a two-state machine: Idle (no station selected) and
Selected(station). SelectStation always loops back into Selected,
resetting prior visual state first, so there is no terminal state and no
residual overlays between selections. All mutable visual state lives on
the session object rather than in package globals, which allows multiple
independent sessions in one process.
*/
package session
