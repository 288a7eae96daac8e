package store

// PollingCommand returns the argument list that asks the query script for the
// current state of the repository.
//
// Nothing is validated here, a missing repository name or an empty list of
// pundles produces a shorter command and the script reports the problem.
func PollingCommand(r RepositorySpec, script string) []string {
	args := []string{script, "-repository", r.RepositoryName, "-packages"}
	args = append(args, r.PundleNames()...)
	return append(args,
		"-versionRegex", r.VersionRegex,
		"-blessedAtLeast", r.MinimumBlessingLevel)
}
