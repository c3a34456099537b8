package actioncontext

// PayloadKind tells which commit shape the triggering event carried
type PayloadKind int

const (
	// Bare events carry no commit data, eg. workflow_dispatch or schedule
	Bare PayloadKind = iota
	// HeadCommit events carry a single head_commit object
	HeadCommit
	// CommitList events carry a commits array but no head_commit
	CommitList
)

func (k PayloadKind) String() string {
	return kindToString[k]
}

var kindToString = map[PayloadKind]string{
	Bare:       "bare",
	HeadCommit: "head_commit",
	CommitList: "commits",
}
