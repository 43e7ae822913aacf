// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/centrality"
)

func (a *app) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every user",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return a.users() },
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.show(args[0]) },
	}
}

func (a *app) friendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "friends <name>",
		Short: "List a user's friends",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.friends(args[0]) },
	}
}

func (a *app) postsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "posts <name>",
		Short: "List a user's posts, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.posts(args[0]) },
	}
}

func (a *app) mutualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutual <a> <b>",
		Short: "Users between a and b on the shortest friendship path",
		Args:  cobra.ExactArgs(2),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.mutual(args[0], args[1]) },
	}
}

func (a *app) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <name>",
		Short: "Suggest friends by common-neighbor count",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.suggest(args[0]) },
	}
}

func (a *app) centralityCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:       "centrality degree|eigenvector",
		Short:     "Rank users by degree or eigenvector centrality",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"degree", "eigenvector"},
		RunE:      func(cmd *cobra.Command, args []string) error { return a.centrality(args[0], top) },
	}
	cmd.Flags().IntVar(&top, "top", 0, "print only the first n users (0 = all)")
	return cmd
}

func (a *app) users() error {
	for _, name := range a.net.Users() {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

func (a *app) show(name string) error {
	p, err := a.net.User(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "name: %s\nfriends: %d\nlikes: %d\nfollowers: %v\nfollows: %v\nposts: %d\n",
		p.Name, p.Friends, p.Likes, p.Followers, p.Follows, len(p.Posts))
	return nil
}

func (a *app) friends(name string) error {
	friends, err := a.net.Friends(name)
	if err != nil {
		return err
	}
	a.printList(friends)
	return nil
}

func (a *app) posts(name string) error {
	posts, err := a.net.Posts(name)
	if err != nil {
		return err
	}
	for i, p := range posts {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, p.Text)
	}
	return nil
}

func (a *app) mutual(x, y string) error {
	ids, err := a.net.MutualFriends(x, y)
	if err != nil {
		return err
	}
	a.printList(ids)
	return nil
}

func (a *app) suggest(name string) error {
	suggestions, err := a.net.SuggestFriends(name)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(a.out, "(none)")
	}
	for _, s := range suggestions {
		fmt.Fprintf(a.out, "%s\t%d\n", s.ID, s.Count)
	}
	return nil
}

func (a *app) centrality(kind string, top int) error {
	var scores map[string]float64
	switch kind {
	case "degree":
		scores = a.net.DegreeCentrality()
	case "eigenvector":
		var err error
		if scores, err = a.net.EigenvectorCentrality(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown centrality %q (want degree or eigenvector)", kind)
	}
	if top < 0 {
		return fmt.Errorf("--top must be >= 0, got %d", top)
	}

	ranked := centrality.Rank(scores)
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	for _, s := range ranked {
		fmt.Fprintf(a.out, "%s\t%.4f\n", s.ID, s.Value)
	}
	return nil
}

// printList prints one name per line, or "(none)".
func (a *app) printList(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(a.out, "(none)")
		return
	}
	for _, n := range names {
		fmt.Fprintln(a.out, n)
	}
}
