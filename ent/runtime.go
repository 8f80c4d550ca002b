// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkale/skillforge/ent/activityevent"
	"github.com/mkale/skillforge/ent/collabparticipant"
	"github.com/mkale/skillforge/ent/collabsession"
	"github.com/mkale/skillforge/ent/completionevent"
	"github.com/mkale/skillforge/ent/discussion"
	"github.com/mkale/skillforge/ent/llmrequestevent"
	"github.com/mkale/skillforge/ent/messageevent"
	"github.com/mkale/skillforge/ent/profile"
	"github.com/mkale/skillforge/ent/schema"
	"github.com/mkale/skillforge/ent/vote"
	"github.com/mkale/skillforge/ent/xpledger"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultUserID holds the default value on creation for the user_id field.
	activityevent.DefaultUserID = activityeventDescUserID.Default.(string)
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[2].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescActivityType is the schema descriptor for activity_type field.
	activityeventDescActivityType := activityeventFields[0].Descriptor()
	// activityevent.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	activityevent.ActivityTypeValidator = activityeventDescActivityType.Validators[0].(func(string) error)
	// activityeventDescDetail is the schema descriptor for detail field.
	activityeventDescDetail := activityeventFields[1].Descriptor()
	// activityevent.DefaultDetail holds the default value on creation for the detail field.
	activityevent.DefaultDetail = activityeventDescDetail.Default.(string)
	// activityeventDescXpDelta is the schema descriptor for xp_delta field.
	activityeventDescXpDelta := activityeventFields[2].Descriptor()
	// activityevent.DefaultXpDelta holds the default value on creation for the xp_delta field.
	activityevent.DefaultXpDelta = activityeventDescXpDelta.Default.(int)
	collabparticipantFields := schema.CollabParticipant{}.Fields()
	_ = collabparticipantFields
	// collabparticipantDescSessionID is the schema descriptor for session_id field.
	collabparticipantDescSessionID := collabparticipantFields[0].Descriptor()
	// collabparticipant.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	collabparticipant.SessionIDValidator = collabparticipantDescSessionID.Validators[0].(func(string) error)
	// collabparticipantDescUserID is the schema descriptor for user_id field.
	collabparticipantDescUserID := collabparticipantFields[1].Descriptor()
	// collabparticipant.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	collabparticipant.UserIDValidator = collabparticipantDescUserID.Validators[0].(func(string) error)
	// collabparticipantDescJoinedAt is the schema descriptor for joined_at field.
	collabparticipantDescJoinedAt := collabparticipantFields[2].Descriptor()
	// collabparticipant.DefaultJoinedAt holds the default value on creation for the joined_at field.
	collabparticipant.DefaultJoinedAt = collabparticipantDescJoinedAt.Default.(func() time.Time)
	collabsessionFields := schema.CollabSession{}.Fields()
	_ = collabsessionFields
	// collabsessionDescSessionID is the schema descriptor for session_id field.
	collabsessionDescSessionID := collabsessionFields[0].Descriptor()
	// collabsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	collabsession.SessionIDValidator = collabsessionDescSessionID.Validators[0].(func(string) error)
	// collabsessionDescHostUserID is the schema descriptor for host_user_id field.
	collabsessionDescHostUserID := collabsessionFields[1].Descriptor()
	// collabsession.HostUserIDValidator is a validator for the "host_user_id" field. It is called by the builders before save.
	collabsession.HostUserIDValidator = collabsessionDescHostUserID.Validators[0].(func(string) error)
	// collabsessionDescTitle is the schema descriptor for title field.
	collabsessionDescTitle := collabsessionFields[2].Descriptor()
	// collabsession.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	collabsession.TitleValidator = collabsessionDescTitle.Validators[0].(func(string) error)
	// collabsessionDescLanguage is the schema descriptor for language field.
	collabsessionDescLanguage := collabsessionFields[3].Descriptor()
	// collabsession.DefaultLanguage holds the default value on creation for the language field.
	collabsession.DefaultLanguage = collabsessionDescLanguage.Default.(string)
	// collabsessionDescRelayURL is the schema descriptor for relay_url field.
	collabsessionDescRelayURL := collabsessionFields[4].Descriptor()
	// collabsession.DefaultRelayURL holds the default value on creation for the relay_url field.
	collabsession.DefaultRelayURL = collabsessionDescRelayURL.Default.(string)
	// collabsessionDescActive is the schema descriptor for active field.
	collabsessionDescActive := collabsessionFields[5].Descriptor()
	// collabsession.DefaultActive holds the default value on creation for the active field.
	collabsession.DefaultActive = collabsessionDescActive.Default.(bool)
	// collabsessionDescCreatedAt is the schema descriptor for created_at field.
	collabsessionDescCreatedAt := collabsessionFields[6].Descriptor()
	// collabsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	collabsession.DefaultCreatedAt = collabsessionDescCreatedAt.Default.(func() time.Time)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescUserID is the schema descriptor for user_id field.
	completioneventDescUserID := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultUserID holds the default value on creation for the user_id field.
	completionevent.DefaultUserID = completioneventDescUserID.Default.(string)
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[2].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescCompletionID is the schema descriptor for completion_id field.
	completioneventDescCompletionID := completioneventFields[0].Descriptor()
	// completionevent.CompletionIDValidator is a validator for the "completion_id" field. It is called by the builders before save.
	completionevent.CompletionIDValidator = completioneventDescCompletionID.Validators[0].(func(string) error)
	// completioneventDescChallengeName is the schema descriptor for challenge_name field.
	completioneventDescChallengeName := completioneventFields[1].Descriptor()
	// completionevent.ChallengeNameValidator is a validator for the "challenge_name" field. It is called by the builders before save.
	completionevent.ChallengeNameValidator = completioneventDescChallengeName.Validators[0].(func(string) error)
	// completioneventDescScore is the schema descriptor for score field.
	completioneventDescScore := completioneventFields[2].Descriptor()
	// completionevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	completionevent.ScoreValidator = func() func(int) error {
		validators := completioneventDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// completioneventDescDifficulty is the schema descriptor for difficulty field.
	completioneventDescDifficulty := completioneventFields[3].Descriptor()
	// completionevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	completionevent.DifficultyValidator = completioneventDescDifficulty.Validators[0].(func(string) error)
	// completioneventDescXpEarned is the schema descriptor for xp_earned field.
	completioneventDescXpEarned := completioneventFields[5].Descriptor()
	// completionevent.XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	completionevent.XpEarnedValidator = completioneventDescXpEarned.Validators[0].(func(int) error)
	discussionFields := schema.Discussion{}.Fields()
	_ = discussionFields
	// discussionDescDiscussionID is the schema descriptor for discussion_id field.
	discussionDescDiscussionID := discussionFields[0].Descriptor()
	// discussion.DiscussionIDValidator is a validator for the "discussion_id" field. It is called by the builders before save.
	discussion.DiscussionIDValidator = discussionDescDiscussionID.Validators[0].(func(string) error)
	// discussionDescUserID is the schema descriptor for user_id field.
	discussionDescUserID := discussionFields[1].Descriptor()
	// discussion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	discussion.UserIDValidator = discussionDescUserID.Validators[0].(func(string) error)
	// discussionDescTitle is the schema descriptor for title field.
	discussionDescTitle := discussionFields[2].Descriptor()
	// discussion.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	discussion.TitleValidator = discussionDescTitle.Validators[0].(func(string) error)
	// discussionDescBody is the schema descriptor for body field.
	discussionDescBody := discussionFields[3].Descriptor()
	// discussion.DefaultBody holds the default value on creation for the body field.
	discussion.DefaultBody = discussionDescBody.Default.(string)
	// discussionDescSkillTag is the schema descriptor for skill_tag field.
	discussionDescSkillTag := discussionFields[4].Descriptor()
	// discussion.DefaultSkillTag holds the default value on creation for the skill_tag field.
	discussion.DefaultSkillTag = discussionDescSkillTag.Default.(string)
	// discussionDescCreatedAt is the schema descriptor for created_at field.
	discussionDescCreatedAt := discussionFields[5].Descriptor()
	// discussion.DefaultCreatedAt holds the default value on creation for the created_at field.
	discussion.DefaultCreatedAt = discussionDescCreatedAt.Default.(func() time.Time)
	// discussionDescUpdatedAt is the schema descriptor for updated_at field.
	discussionDescUpdatedAt := discussionFields[6].Descriptor()
	// discussion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	discussion.DefaultUpdatedAt = discussionDescUpdatedAt.Default.(func() time.Time)
	// discussion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	discussion.UpdateDefaultUpdatedAt = discussionDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescUserID is the schema descriptor for user_id field.
	llmrequesteventDescUserID := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultUserID holds the default value on creation for the user_id field.
	llmrequestevent.DefaultUserID = llmrequesteventDescUserID.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[2].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	messageeventMixin := schema.MessageEvent{}.Mixin()
	messageeventMixinFields0 := messageeventMixin[0].Fields()
	_ = messageeventMixinFields0
	messageeventFields := schema.MessageEvent{}.Fields()
	_ = messageeventFields
	// messageeventDescUserID is the schema descriptor for user_id field.
	messageeventDescUserID := messageeventMixinFields0[1].Descriptor()
	// messageevent.DefaultUserID holds the default value on creation for the user_id field.
	messageevent.DefaultUserID = messageeventDescUserID.Default.(string)
	// messageeventDescTimestamp is the schema descriptor for timestamp field.
	messageeventDescTimestamp := messageeventMixinFields0[2].Descriptor()
	// messageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	messageevent.DefaultTimestamp = messageeventDescTimestamp.Default.(func() time.Time)
	// messageeventDescMessageID is the schema descriptor for message_id field.
	messageeventDescMessageID := messageeventFields[0].Descriptor()
	// messageevent.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	messageevent.MessageIDValidator = messageeventDescMessageID.Validators[0].(func(string) error)
	// messageeventDescDiscussionID is the schema descriptor for discussion_id field.
	messageeventDescDiscussionID := messageeventFields[1].Descriptor()
	// messageevent.DiscussionIDValidator is a validator for the "discussion_id" field. It is called by the builders before save.
	messageevent.DiscussionIDValidator = messageeventDescDiscussionID.Validators[0].(func(string) error)
	// messageeventDescBody is the schema descriptor for body field.
	messageeventDescBody := messageeventFields[2].Descriptor()
	// messageevent.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	messageevent.BodyValidator = messageeventDescBody.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescUsername is the schema descriptor for username field.
	profileDescUsername := profileFields[1].Descriptor()
	// profile.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	profile.UsernameValidator = profileDescUsername.Validators[0].(func(string) error)
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[2].Descriptor()
	// profile.DefaultDisplayName holds the default value on creation for the display_name field.
	profile.DefaultDisplayName = profileDescDisplayName.Default.(string)
	// profileDescPasswordHash is the schema descriptor for password_hash field.
	profileDescPasswordHash := profileFields[3].Descriptor()
	// profile.DefaultPasswordHash holds the default value on creation for the password_hash field.
	profile.DefaultPasswordHash = profileDescPasswordHash.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescLastSeen is the schema descriptor for last_seen field.
	profileDescLastSeen := profileFields[6].Descriptor()
	// profile.DefaultLastSeen holds the default value on creation for the last_seen field.
	profile.DefaultLastSeen = profileDescLastSeen.Default.(func() time.Time)
	voteFields := schema.Vote{}.Fields()
	_ = voteFields
	// voteDescUserID is the schema descriptor for user_id field.
	voteDescUserID := voteFields[0].Descriptor()
	// vote.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	vote.UserIDValidator = voteDescUserID.Validators[0].(func(string) error)
	// voteDescTargetType is the schema descriptor for target_type field.
	voteDescTargetType := voteFields[1].Descriptor()
	// vote.TargetTypeValidator is a validator for the "target_type" field. It is called by the builders before save.
	vote.TargetTypeValidator = voteDescTargetType.Validators[0].(func(string) error)
	// voteDescTargetID is the schema descriptor for target_id field.
	voteDescTargetID := voteFields[2].Descriptor()
	// vote.TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	vote.TargetIDValidator = voteDescTargetID.Validators[0].(func(string) error)
	// voteDescCreatedAt is the schema descriptor for created_at field.
	voteDescCreatedAt := voteFields[4].Descriptor()
	// vote.DefaultCreatedAt holds the default value on creation for the created_at field.
	vote.DefaultCreatedAt = voteDescCreatedAt.Default.(func() time.Time)
	xpledgerFields := schema.XpLedger{}.Fields()
	_ = xpledgerFields
	// xpledgerDescUserID is the schema descriptor for user_id field.
	xpledgerDescUserID := xpledgerFields[0].Descriptor()
	// xpledger.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	xpledger.UserIDValidator = xpledgerDescUserID.Validators[0].(func(string) error)
	// xpledgerDescTotalXp is the schema descriptor for total_xp field.
	xpledgerDescTotalXp := xpledgerFields[1].Descriptor()
	// xpledger.DefaultTotalXp holds the default value on creation for the total_xp field.
	xpledger.DefaultTotalXp = xpledgerDescTotalXp.Default.(int)
	// xpledger.TotalXpValidator is a validator for the "total_xp" field. It is called by the builders before save.
	xpledger.TotalXpValidator = xpledgerDescTotalXp.Validators[0].(func(int) error)
	// xpledgerDescDailyXp is the schema descriptor for daily_xp field.
	xpledgerDescDailyXp := xpledgerFields[2].Descriptor()
	// xpledger.DefaultDailyXp holds the default value on creation for the daily_xp field.
	xpledger.DefaultDailyXp = xpledgerDescDailyXp.Default.(int)
	// xpledger.DailyXpValidator is a validator for the "daily_xp" field. It is called by the builders before save.
	xpledger.DailyXpValidator = xpledgerDescDailyXp.Validators[0].(func(int) error)
	// xpledgerDescWeeklyXp is the schema descriptor for weekly_xp field.
	xpledgerDescWeeklyXp := xpledgerFields[3].Descriptor()
	// xpledger.DefaultWeeklyXp holds the default value on creation for the weekly_xp field.
	xpledger.DefaultWeeklyXp = xpledgerDescWeeklyXp.Default.(int)
	// xpledger.WeeklyXpValidator is a validator for the "weekly_xp" field. It is called by the builders before save.
	xpledger.WeeklyXpValidator = xpledgerDescWeeklyXp.Validators[0].(func(int) error)
	// xpledgerDescLastDailyReset is the schema descriptor for last_daily_reset field.
	xpledgerDescLastDailyReset := xpledgerFields[4].Descriptor()
	// xpledger.DefaultLastDailyReset holds the default value on creation for the last_daily_reset field.
	xpledger.DefaultLastDailyReset = xpledgerDescLastDailyReset.Default.(string)
	// xpledgerDescLastWeeklyReset is the schema descriptor for last_weekly_reset field.
	xpledgerDescLastWeeklyReset := xpledgerFields[5].Descriptor()
	// xpledger.DefaultLastWeeklyReset holds the default value on creation for the last_weekly_reset field.
	xpledger.DefaultLastWeeklyReset = xpledgerDescLastWeeklyReset.Default.(string)
	// xpledgerDescUpdatedAt is the schema descriptor for updated_at field.
	xpledgerDescUpdatedAt := xpledgerFields[6].Descriptor()
	// xpledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	xpledger.DefaultUpdatedAt = xpledgerDescUpdatedAt.Default.(func() time.Time)
	// xpledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	xpledger.UpdateDefaultUpdatedAt = xpledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
}
