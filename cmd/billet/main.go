package main

import (
	"github.com/bornholm/billet/internal/command"
	"github.com/bornholm/billet/internal/command/post"
	"github.com/bornholm/billet/internal/command/user"
)

func main() {
	command.Main(
		"billet",
		"Billet administration client",
		user.Command(),
		post.Command(),
	)
}
