// skillbox is a command-line toolbox of agent skills: an arithmetic
// calculator and an inference-model template generator for local LLMs.
package main

import "github.com/thangchung/skillbox/internal/commands"

func main() {
	commands.Execute()
}
