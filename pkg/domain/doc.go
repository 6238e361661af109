/*
Package domain contains the core domain models of the fasim automaton simulator.

It defines the transition table of a deterministic finite automaton, the
records produced while replaying inputs against it, and the errors raised when
a description cannot be read. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Table: The immutable transition function (state -> input -> destination).
  - Record: One step of a run, either an advance to a state or a rejection.
  - Trajectory: The ordered records of a single simulation.
  - Simulation: A start state plus the inputs to replay from it.
*/
package domain
