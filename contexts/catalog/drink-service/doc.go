// Package drinkservice owns the drink catalog: the entity, its two JSON
// projections (summary and detail), and the list/create/update/delete
// operations behind it. Persistence is pluggable through ports.Repository;
// the postgres adapter is the production store and the memory adapter backs
// tests and local runs.
package drinkservice
