// Package tasksdk contains the wire types for the taskboard HTTP API and a
// small client for calling it. The server handlers and any Go consumers share
// these definitions so the two sides cannot drift apart.
package tasksdk
