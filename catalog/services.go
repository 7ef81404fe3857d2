package catalog

import "sort"

// Services groups remote tool identifiers under coarse service
// categories. The table is fixed at process start and never mutated.
// Entries that name tools absent from the current catalog are silently
// unselectable, not an error.
var Services = map[string][]string{
	"x": {
		"X_DeleteTweetById",
		"X_LookupSingleUserByUsername",
		"X_LookupTweetById",
		"X_PostTweet",
		"X_SearchRecentTweetsByKeywords",
		"X_SearchRecentTweetsByUsername",
	},
	"github": {
		"Github_CountStargazers",
		"Github_CreateIssue",
		"Github_CreateIssueComment",
		"Github_CreateReplyForReviewComment",
		"Github_CreateReviewComment",
		"Github_GetPullRequest",
		"Github_GetRepository",
		"Github_ListOrgRepositories",
		"Github_ListPullRequestCommits",
		"Github_ListPullRequests",
		"Github_ListRepositoryActivities",
		"Github_ListReviewCommentsInARepository",
		"Github_ListReviewCommentsOnPullRequest",
		"Github_ListStargazers",
		"Github_SetStarred",
		"Github_UpdatePullRequest",
	},
	"gmail": {
		"Google_ListDraftEmails",
		"Google_ListEmails",
		"Google_ReplyToEmail",
		"Google_SendEmail",
		"Google_SendDraftEmail",
		"Google_WriteDraftEmail",
		"Google_WriteDraftReplyEmail",
		"Google_SearchContactsByEmail",
		"Google_SearchContactsByName",
	},
	"google": {
		"Google_ChangeEmailLabels",
		"Google_CreateContact",
		"Google_CreateLabel",
		"Google_DeleteDraftEmail",
		"Google_GetThread",
		"Google_ListEmailsByHeader",
		"Google_ListLabels",
		"Google_ListThreads",
		"Google_SearchContactsByEmail",
		"Google_SearchContactsByName",
		"Google_SearchThreads",
		"Google_TrashEmail",
		"Google_UpdateDraftEmail",
	},
	"gcal": {
		"Google_SearchContactsByEmail",
		"Google_SearchContactsByName",
		"Google_CreateEvent",
		"Google_ListEvents",
		"Google_UpdateEvent",
		"Google_DeleteEvent",
	},
	"linkedin": {
		"Linkedin_CreateTextPost",
	},
	"search": {
		"Search_SearchGoogle",
	},
	"hotels": {
		"Search_SearchHotels",
	},
	"flights": {
		"Search_SearchOneWayFlights",
		"Search_SearchRoundTripFlights",
	},
	"stocks": {
		"Search_StockSummary",
		"Search_StockHistoricalData",
	},
	"codesandbox": {
		"CodeSandbox_RunCode",
	},
}

// Categories returns the known category labels in sorted order.
func Categories() []string {
	names := make([]string, 0, len(Services))
	for name := range Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
