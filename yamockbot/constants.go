package yamockbot

const (
	defaultUsername          = "MockBot"
	defaultInlineCacheTime   = 300
	defaultProfilePhotoLimit = 100

	statusCreator       = "creator"
	statusAdministrator = "administrator"
	statusMember        = "member"
)

const (
	methodSendMessage            = "sendMessage"
	methodForwardMessage         = "forwardMessage"
	methodSendPhoto              = "sendPhoto"
	methodSendAudio              = "sendAudio"
	methodSendDocument           = "sendDocument"
	methodSendSticker            = "sendSticker"
	methodSendVideo              = "sendVideo"
	methodSendVoice              = "sendVoice"
	methodSendLocation           = "sendLocation"
	methodSendVenue              = "sendVenue"
	methodSendContact            = "sendContact"
	methodSendGame               = "sendGame"
	methodSendChatAction         = "sendChatAction"
	methodEditMessageText        = "editMessageText"
	methodEditMessageCaption     = "editMessageCaption"
	methodEditMessageReplyMarkup = "editMessageReplyMarkup"
	methodAnswerInlineQuery      = "answerInlineQuery"
	methodAnswerCallbackQuery    = "answerCallbackQuery"
	methodGetUserProfilePhotos   = "getUserProfilePhotos"
	methodGetFile                = "getFile"
	methodKickChatMember         = "kickChatMember"
	methodUnbanChatMember        = "unbanChatMember"
	methodLeaveChat              = "leaveChat"
	methodGetChat                = "getChat"
	methodGetChatAdministrators  = "getChatAdministrators"
	methodGetChatMember          = "getChatMember"
	methodGetChatMembersCount    = "getChatMembersCount"
	methodSetGameScore           = "setGameScore"
	methodGetGameHighScores      = "getGameHighScores"
)
