package commands

import "git.home.luguber.info/inful/doctasks/internal/tasks"

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	return root.runTask(g, tasks.TaskBuild)
}

// ServeCmd implements the 'serve' command. It blocks until interrupted.
type ServeCmd struct{}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	return root.runTask(g, tasks.TaskServe)
}

// PublishCmd implements the 'publish' command.
type PublishCmd struct{}

func (p *PublishCmd) Run(g *Global, root *CLI) error {
	return root.runTask(g, tasks.TaskPublish)
}
