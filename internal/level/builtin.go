package level

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/abhisek/gitdojo/internal/repo"
)

// builtinLevels is the built-in catalogue in play order.
func builtinLevels() []Level {
	return []Level{
		New("init").
			Difficulty(1).
			Description("The practice directory has been created for you. Turn it into a git repository.").
			Hint("You can type `git` in your shell to get a list of available git commands.",
				"The repository must be created inside the practice directory itself.").
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				return r.IsRepo(ctx), nil
			}).
			Build(),

		New("config").
			Difficulty(1).
			Description("Set your name and your email address for this repository only.").
			Hint("`git config` stores settings; without --global they apply to the current repository.",
				"Two keys are needed: user.name and user.email.").
			Setup(initOnly).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				return r.ConfigValue(ctx, "user.name") != "" && r.ConfigValue(ctx, "user.email") != "", nil
			}).
			Build(),

		New("add").
			Difficulty(1).
			Description("There is a file named README in the repository. Add it to the staging area.").
			Hint("Staging is done with `git add <file>`.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				if err := r.Init(ctx); err != nil {
					return err
				}
				return r.WriteFile("README", "This is a README.\n")
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				staged, err := r.StagedFiles(ctx)
				if err != nil {
					return false, nil
				}
				return slices.Contains(staged, "README"), nil
			}).
			Build(),

		New("commit").
			Difficulty(1).
			Description("The README file has been staged. Commit it.").
			Hint("`git commit -m \"message\"` records the staged changes.",
				"Git needs to know who you are; look back at the config level.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				if err := r.Init(ctx); err != nil {
					return err
				}
				if err := r.WriteFile("README", "This is a README.\n"); err != nil {
					return err
				}
				_, err := r.Git(ctx, "add", "README")
				return err
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				return r.CommitCount(ctx) >= 1, nil
			}).
			Build(),

		New("rm").
			Difficulty(2).
			Description("A file has been removed from the working tree but not from the repository. Find it and remove it from the repository too.").
			Hint("`git status` shows which tracked files are missing.",
				"`git rm <file>` records the removal.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				if err := commitFiles(ctx, r, map[string]string{"deleted.txt": "This file will be deleted.\n"}); err != nil {
					return err
				}
				return os.Remove(filepath.Join(r.Dir(), "deleted.txt"))
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				tracked, err := r.TrackedFiles(ctx)
				if err != nil {
					return false, nil
				}
				return !slices.Contains(tracked, "deleted.txt"), nil
			}).
			Build(),

		New("rm_cached").
			Difficulty(2).
			Description("A file named deleteme.rb was added to the staging area by mistake. Unstage it without deleting it from disk.").
			Hint("`git rm` has an option that only touches the index; check `git rm --help`.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				if err := r.Init(ctx); err != nil {
					return err
				}
				if err := r.WriteFile("deleteme.rb", "puts 'delete me'\n"); err != nil {
					return err
				}
				_, err := r.Git(ctx, "add", "deleteme.rb")
				return err
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				tracked, err := r.TrackedFiles(ctx)
				if err != nil {
					return false, nil
				}
				return !slices.Contains(tracked, "deleteme.rb") && r.Exists("deleteme.rb"), nil
			}).
			Build(),

		New("ignore").
			Difficulty(2).
			Description("The editor left a swap file behind. Make git ignore every file ending in .swp.").
			Hint("Ignore patterns live in a file named .gitignore.",
				"A wildcard pattern such as *.ext matches every file with that extension.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				if err := r.Init(ctx); err != nil {
					return err
				}
				return r.WriteFile(".foo.swp", "swap\n")
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				content, err := r.ReadFile(".gitignore")
				if err != nil {
					return false, nil
				}
				for _, line := range strings.Split(content, "\n") {
					if strings.TrimSpace(line) == "*.swp" {
						return true, nil
					}
				}
				return false, nil
			}).
			Build(),

		New("branch").
			Difficulty(2).
			Description("You want to work on a piece of code without touching the main line. Create a branch named test_code.").
			Hint("`git branch <name>` creates a branch.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				return commitFiles(ctx, r, map[string]string{"README": "This is a README.\n"})
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				branches, err := r.Branches(ctx)
				if err != nil {
					return false, nil
				}
				return slices.Contains(branches, "test_code"), nil
			}).
			Build(),

		New("checkout").
			Difficulty(2).
			Description("A branch named my_branch exists. Switch to it.").
			Hint("`git checkout <branch>` or `git switch <branch>` changes the current branch.").
			Setup(func(ctx context.Context, r *repo.Repo) error {
				if err := commitFiles(ctx, r, map[string]string{"README": "This is a README.\n"}); err != nil {
					return err
				}
				_, err := r.Git(ctx, "branch", "my_branch")
				return err
			}).
			Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
				branch, err := r.CurrentBranch(ctx)
				if err != nil {
					return false, nil
				}
				return branch == "my_branch", nil
			}).
			Build(),
	}
}

// BuiltinNames returns the built-in level names in play order.
func BuiltinNames() []string {
	levels := builtinLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names
}

func initOnly(ctx context.Context, r *repo.Repo) error {
	return r.Init(ctx)
}

// commitFiles initializes the repository and commits files in one commit.
func commitFiles(ctx context.Context, r *repo.Repo, files map[string]string) error {
	if err := r.Init(ctx); err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := r.WriteFile(name, files[name]); err != nil {
			return err
		}
	}
	if _, err := r.Git(ctx, append([]string{"add", "--"}, names...)...); err != nil {
		return err
	}
	return r.Commit(ctx, "Initial commit")
}
