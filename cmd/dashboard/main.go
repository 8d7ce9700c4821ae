// Command dashboard is a terminal front door to the restaurant backend: it
// owns a session the same way the web dashboard does, persisting the bearer
// credential between runs and resolving it back into an identity on start.
package main

func main() {
	Execute()
}
