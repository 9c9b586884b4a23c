package domain

// BoardRole is a member's role on a board.
type BoardRole string

const (
	BoardRoleOwner  BoardRole = "owner"
	BoardRoleAdmin  BoardRole = "admin"
	BoardRoleMember BoardRole = "member"
	BoardRoleViewer BoardRole = "viewer"
)

func (r BoardRole) String() string { return string(r) }

func (r BoardRole) IsValid() bool {
	switch r {
	case BoardRoleOwner, BoardRoleAdmin, BoardRoleMember, BoardRoleViewer:
		return true
	}
	return false
}

// CanEdit reports whether the role allows changing board contents.
func (r BoardRole) CanEdit() bool {
	switch r {
	case BoardRoleOwner, BoardRoleAdmin, BoardRoleMember:
		return true
	}
	return false
}

// LabelColor is a named palette color used by labels and card covers.
type LabelColor string

var labelColors = map[LabelColor]struct{}{
	"slate": {}, "gray": {}, "red": {}, "orange": {}, "amber": {}, "yellow": {},
	"lime": {}, "green": {}, "emerald": {}, "teal": {}, "cyan": {}, "sky": {},
	"blue": {}, "indigo": {}, "violet": {}, "purple": {}, "fuchsia": {}, "pink": {}, "rose": {},
}

func (c LabelColor) IsValid() bool {
	_, ok := labelColors[c]
	return ok
}

// ActivityAction is the fixed set of tags recorded in the activity log.
type ActivityAction string

const (
	ActionBoardCreated    ActivityAction = "board_created"
	ActionBoardUpdated    ActivityAction = "board_updated"
	ActionBoardArchived   ActivityAction = "board_archived"
	ActionBoardUnarchived ActivityAction = "board_unarchived"
	ActionBoardDeleted    ActivityAction = "board_deleted"

	ActionListCreated    ActivityAction = "list_created"
	ActionListRenamed    ActivityAction = "list_renamed"
	ActionListArchived   ActivityAction = "list_archived"
	ActionListUnarchived ActivityAction = "list_unarchived"
	ActionListMoved      ActivityAction = "list_moved"

	ActionCardCreated    ActivityAction = "card_created"
	ActionCardUpdated    ActivityAction = "card_updated"
	ActionCardMoved      ActivityAction = "card_moved"
	ActionCardArchived   ActivityAction = "card_archived"
	ActionCardUnarchived ActivityAction = "card_unarchived"
	ActionCardDeleted    ActivityAction = "card_deleted"
	ActionCardLabelsSet  ActivityAction = "card_labels_set"
	ActionCardMembersSet ActivityAction = "card_members_set"

	ActionCommentAdded   ActivityAction = "comment_added"
	ActionCommentEdited  ActivityAction = "comment_edited"
	ActionCommentDeleted ActivityAction = "comment_deleted"

	ActionChecklistAdded       ActivityAction = "checklist_added"
	ActionChecklistDeleted     ActivityAction = "checklist_deleted"
	ActionChecklistItemAdded   ActivityAction = "checklist_item_added"
	ActionChecklistItemToggled ActivityAction = "checklist_item_toggled"

	ActionLabelCreated ActivityAction = "label_created"
	ActionLabelUpdated ActivityAction = "label_updated"
	ActionLabelDeleted ActivityAction = "label_deleted"

	ActionMemberAdded   ActivityAction = "member_added"
	ActionMemberRemoved ActivityAction = "member_removed"
)

var activityActions = map[ActivityAction]struct{}{
	ActionBoardCreated: {}, ActionBoardUpdated: {}, ActionBoardArchived: {},
	ActionBoardUnarchived: {}, ActionBoardDeleted: {},
	ActionListCreated: {}, ActionListRenamed: {}, ActionListArchived: {},
	ActionListUnarchived: {}, ActionListMoved: {},
	ActionCardCreated: {}, ActionCardUpdated: {}, ActionCardMoved: {},
	ActionCardArchived: {}, ActionCardUnarchived: {}, ActionCardDeleted: {},
	ActionCardLabelsSet: {}, ActionCardMembersSet: {},
	ActionCommentAdded: {}, ActionCommentEdited: {}, ActionCommentDeleted: {},
	ActionChecklistAdded: {}, ActionChecklistDeleted: {},
	ActionChecklistItemAdded: {}, ActionChecklistItemToggled: {},
	ActionLabelCreated: {}, ActionLabelUpdated: {}, ActionLabelDeleted: {},
	ActionMemberAdded: {}, ActionMemberRemoved: {},
}

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	_, ok := activityActions[a]
	return ok
}

// TargetType identifies the kind of entity an activity refers to.
type TargetType string

const (
	TargetBoard         TargetType = "board"
	TargetList          TargetType = "list"
	TargetCard          TargetType = "card"
	TargetComment       TargetType = "comment"
	TargetChecklist     TargetType = "checklist"
	TargetChecklistItem TargetType = "checklist_item"
	TargetLabel         TargetType = "label"
	TargetMember        TargetType = "member"
)

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetBoard, TargetList, TargetCard, TargetComment, TargetChecklist,
		TargetChecklistItem, TargetLabel, TargetMember:
		return true
	}
	return false
}
