/*
Package ports defines the driven ports (interfaces) for the fasim simulator.

These interfaces decouple the core logic from where automaton and simulation
descriptions live, so the same parser and engine can read them from the
filesystem, memory or Redis.

# Key Interfaces

  - DescriptionLoader: Reads the lines of a named description.
  - DescriptionPublisher: Stores the lines of a named description.
*/
package ports
