package constant

// Workflow stages. A panel is always in exactly one stage, derived from its
// deadlines and the current time.
const (
	StageIntake  = "intake"
	StageTagging = "tagging"
	StageVoting  = "voting"
	StageClosed  = "closed"
)

// Reaction types. A user holds at most one active reaction per question;
// submitting a different type replaces the previous one.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
	ReactionFlag    = "flag"
)

// User roles (issued by the external identity provider).
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Panel visibility.
const (
	VisibilityPublic   = "public"
	VisibilityInternal = "internal"
)

// Domain event types published to the NATS bus.
const (
	EventQuestionSubmitted    = "QUESTION_SUBMITTED"
	EventQuestionsDistributed = "QUESTIONS_DISTRIBUTED"
	EventGroupMerged          = "GROUP_MERGED"
	EventVoteSubmitted        = "VOTE_SUBMITTED"
)

// Vote score correlation methods (MetricService configuration).
const (
	VoteScoreSpearman = "spearman"
	VoteScoreKendall  = "kendall"
)
