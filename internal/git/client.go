package git

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"branchout/internal/models"
)

// Client runs git in the current working directory.
type Client struct{}

func NewClient() Client {
	return Client{}
}

// RepositoryError means branches could not be enumerated, typically
// because the process is not inside a git working tree.
type RepositoryError struct {
	Output string
	Err    error
}

func (e *RepositoryError) Error() string {
	if msg := strings.TrimSpace(e.Output); msg != "" {
		return msg
	}
	return fmt.Sprintf("failed to query repository: %v", e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// CheckoutError carries git's own message verbatim; it is never
// retried, only reported.
type CheckoutError struct {
	Ref    string
	Output string
	Err    error
}

func (e *CheckoutError) Error() string {
	if msg := strings.TrimSpace(e.Output); msg != "" {
		return msg
	}
	return fmt.Sprintf("failed to checkout %q: %v", e.Ref, e.Err)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

// ListBranches returns all local branches followed by all remote
// branches, in git's for-each-ref order. The ordering is stable for a
// fixed repository state; the catalog does not re-sort it.
func (c Client) ListBranches() ([]models.Branch, error) {
	locals, err := c.listLocal()
	if err != nil {
		return nil, err
	}
	remotes, err := c.listRemote()
	if err != nil {
		return nil, err
	}
	return append(locals, remotes...), nil
}

func (c Client) listLocal() ([]models.Branch, error) {
	output, err := gitQuery("for-each-ref",
		"--format=%(HEAD)%09%(refname:short)%09%(upstream:short)", "refs/heads")
	if err != nil {
		return nil, err
	}
	return parseLocalBranches(output), nil
}

func (c Client) listRemote() ([]models.Branch, error) {
	output, err := gitQuery("for-each-ref",
		"--format=%(refname:short)%09%(symref)", "refs/remotes")
	if err != nil {
		return nil, err
	}
	return parseRemoteBranches(output), nil
}

// gitQuery runs a read-only git command, keeping stderr out of the
// parsed stream and preserving it for the error message.
func gitQuery(args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &RepositoryError{Output: string(exitErr.Stderr), Err: err}
		}
		return nil, &RepositoryError{Err: err}
	}
	return output, nil
}

// parseLocalBranches reads lines like:
//
//	*	main	origin/main
//	 	dev
func parseLocalBranches(output []byte) []models.Branch {
	var branches []models.Branch
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 2 {
			continue
		}

		branch := models.Branch{
			Kind:      models.KindLocal,
			IsCurrent: parts[0] == "*",
			Name:      parts[1],
		}
		if len(parts) == 3 {
			branch.Upstream = strings.TrimSpace(parts[2])
		}

		branches = append(branches, branch)
	}

	return branches
}

// parseRemoteBranches reads lines like:
//
//	origin/HEAD	refs/remotes/origin/main
//	origin/main
//
// Symbolic refs (the remote HEAD pointer) are skipped; they are not
// branches a user can check out.
func parseRemoteBranches(output []byte) []models.Branch {
	var branches []models.Branch
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			continue // symref
		}

		remote, name, ok := strings.Cut(parts[0], "/")
		if !ok {
			continue
		}

		branches = append(branches, models.Branch{
			Kind:   models.KindRemote,
			Remote: remote,
			Name:   name,
		})
	}

	return branches
}

// CheckoutLocal checks out an existing local branch.
func (c Client) CheckoutLocal(name string) error {
	cmd := exec.Command("git", "checkout", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &CheckoutError{Ref: name, Output: string(output), Err: err}
	}
	return nil
}

// CheckoutNewTracking creates a local branch tracking remoteRef and
// checks it out in one step.
func (c Client) CheckoutNewTracking(local, remoteRef string) error {
	cmd := exec.Command("git", "checkout", "-b", local, "--track", remoteRef)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &CheckoutError{Ref: remoteRef, Output: string(output), Err: err}
	}
	return nil
}

// FindLocalTracking returns the names of local branches whose
// configured upstream is remoteRef. More than one result means the
// tracking relationship is ambiguous.
func (c Client) FindLocalTracking(remoteRef string) ([]string, error) {
	locals, err := c.listLocal()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, b := range locals {
		if b.Upstream == remoteRef {
			names = append(names, b.Name)
		}
	}
	return names, nil
}
