// Command quizdb ingests trivia question archives and tournament results
// into a normalized SQLite database.
package main
