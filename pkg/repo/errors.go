package repo

import "errors"

// Error kinds from spec §7. Each carries a single canonical user-visible
// message; the cmd dispatcher prints Error() and returns (spec §6
// "Exit"). Some are informational results on a success path
// (AncestorMerge, FastForward) rather than failures, but are still
// propagated as errors so callers have one channel to report outcome.
var (
	ErrNotInitialized     = errors.New("Not in an initialized Gitlet directory.")
	ErrAlreadyInitialized = errors.New("A Gitlet version-control system already exists in the current directory.")
	ErrBadArgs            = errors.New("Incorrect operands.")
	ErrNoCommand          = errors.New("Please enter a command.")
	ErrUnknownCommand     = errors.New("No command with that name exists.")
	ErrFileDoesNotExist   = errors.New("File does not exist.")
	ErrEmptyMessage       = errors.New("Please enter a commit message.")
	ErrNoChanges          = errors.New("No changes added to the commit.")
	ErrNothingToRemove    = errors.New("No reason to remove the file.")
	ErrNoSuchCommit       = errors.New("No commit with that id exists.")
	ErrNoCommitsFound     = errors.New("Found no commit with that message.")
	ErrFileNotInCommit    = errors.New("File does not exist in that commit.")
	ErrNoSuchBranch       = errors.New("No such branch exists.")
	ErrBranchExists       = errors.New("A branch with that name already exists.")
	ErrCannotRemoveCurrent = errors.New("Cannot remove the current branch.")
	ErrSameBranch         = errors.New("Cannot merge a branch with itself.")
	ErrUntrackedOverwrite = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrUncommittedChanges = errors.New("You have uncommitted changes.")
	ErrAncestorMerge      = errors.New("Given branch is an ancestor of the current branch.")
	ErrFastForward        = errors.New("Current branch fast-forwarded.")
	ErrNoRemoteDir        = errors.New("Remote directory not found.")
	ErrRemoteExists       = errors.New("A remote with that name already exists.")
	ErrNoSuchRemote       = errors.New("A remote with that name does not exist.")
	ErrNoSuchRemoteBranch = errors.New("That remote does not have that branch.")
	ErrPushNotFastForward = errors.New("Please pull down remote changes before pushing.")
)
