// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// shellCommand is one line command: minimum argument count plus handler.
// When rest is set, everything after the first minArgs-1 fields is joined
// into the last argument (post text).
type shellCommand struct {
	usage   string
	minArgs int
	maxArgs int
	rest    bool
	run     func(args []string) error
}

// maxLineBytes bounds one shell line; long posts fit well below it.
const maxLineBytes = 1 << 20

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read commands line by line from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.shell()
		},
	}
}

func (a *app) shellCommands() map[string]shellCommand {
	return map[string]shellCommand{
		"adduser":  {usage: "adduser <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.net.AddUser(s[0]) }},
		"friend":   {usage: "friend <a> <b>", minArgs: 2, maxArgs: 2, run: func(s []string) error { return a.net.AddFriend(s[0], s[1]) }},
		"unfriend": {usage: "unfriend <a> <b>", minArgs: 2, maxArgs: 2, run: func(s []string) error { return a.net.RemoveFriend(s[0], s[1]) }},
		"follow":   {usage: "follow <follower> <followed>", minArgs: 2, maxArgs: 2, run: func(s []string) error { return a.net.Follow(s[0], s[1]) }},
		"unfollow": {usage: "unfollow <follower> <followed>", minArgs: 2, maxArgs: 2, run: func(s []string) error { return a.net.Unfollow(s[0], s[1]) }},
		"like":     {usage: "like <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.net.Like(s[0]) }},
		"likepost": {usage: "likepost <liker> <owner>", minArgs: 2, maxArgs: 2, run: func(s []string) error { return a.net.LikePost(s[0], s[1]) }},
		"unlike":   {usage: "unlike <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.net.Unlike(s[0]) }},
		"post": {usage: "post <name> <text...>", minArgs: 2, rest: true, run: func(s []string) error {
			_, err := a.net.AddPost(s[0], s[1])
			return err
		}},
		"users":   {usage: "users", run: func([]string) error { return a.users() }},
		"show":    {usage: "show <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.show(s[0]) }},
		"friends": {usage: "friends <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.friends(s[0]) }},
		"posts":   {usage: "posts <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.posts(s[0]) }},
		"mutual":  {usage: "mutual <a> <b>", minArgs: 2, maxArgs: 2, run: func(s []string) error { return a.mutual(s[0], s[1]) }},
		"suggest": {usage: "suggest <name>", minArgs: 1, maxArgs: 1, run: func(s []string) error { return a.suggest(s[0]) }},
		"centrality": {usage: "centrality degree|eigenvector [top]", minArgs: 1, maxArgs: 2, run: func(s []string) error {
			top := 0
			if len(s) == 2 {
				n, err := strconv.Atoi(s[1])
				if err != nil {
					return fmt.Errorf("top: %w", err)
				}
				top = n
			}
			return a.centrality(s[0], top)
		}},
		"metrics": {usage: "metrics", run: func([]string) error { return a.metrics.WriteText(a.out) }},
	}
}

// shell executes commands from a.in until EOF or quit. Command errors are
// printed and the loop continues.
func (a *app) shell() error {
	cmds := a.shellCommands()
	sc := bufio.NewScanner(a.in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	prompt := isTerminal(a.in)

	for {
		if prompt {
			fmt.Fprint(a.out, "> ")
		}
		if !sc.Scan() {
			if prompt {
				fmt.Fprintln(a.out)
			}
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		name, args := fields[0], fields[1:]

		switch name {
		case "quit", "exit":
			return nil
		case "help":
			a.shellHelp(cmds)
			continue
		}

		c, ok := cmds[name]
		if !ok {
			fmt.Fprintf(a.out, "error: unknown command %q (try help)\n", name)
			continue
		}
		if c.rest && len(args) >= c.minArgs {
			head, rest := splitHead(line, c.minArgs)
			args = append(head[1:], rest)
		}
		if len(args) < c.minArgs || (!c.rest && len(args) > c.maxArgs) {
			fmt.Fprintf(a.out, "usage: %s\n", c.usage)
			continue
		}
		if err := c.run(args); err != nil {
			fmt.Fprintln(a.out, "error:", err)
			continue
		}
	}
}

// splitHead cuts the first n whitespace-separated fields off line and
// returns them with the untouched remainder (inner spacing preserved).
func splitHead(line string, n int) ([]string, string) {
	head := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		end := strings.IndexFunc(line, unicode.IsSpace)
		if end < 0 {
			end = len(line)
		}
		head = append(head, line[:end])
		line = line[end:]
	}
	return head, strings.TrimLeftFunc(line, unicode.IsSpace)
}

func (a *app) shellHelp(cmds map[string]shellCommand) {
	names := make([]string, 0, len(cmds))
	for n := range cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(a.out, " ", cmds[n].usage)
	}
	fmt.Fprintln(a.out, "  quit")
}

// isTerminal reports whether r is an interactive terminal; piped scripts
// get no prompt.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
