package discord

// helpMessage renders the /help reply
func helpMessage() string {
	return "Hi! My job is to connect you with the administrators of this server!\n" +
		"I can create a _support thread_ that is _private_: only you and the admins can see it.\n" +
		"You can explicitly invite someone else to the thread by pinging them there.\n" +
		"\n" +
		"**Everyone commands**:\n" +
		"\t`/support <thread-title>`\tI will create a support thread with your supplied title.\n" +
		"\t\t(appended to your nickname here, i.e. `your-nick | thread-title`, and truncated to 100 characters)\n" +
		"\n" +
		"**Admin commands** (require the Manage Server permission):\n" +
		"\t`/support_channel <channel>`\tI will start using this channel as the location where I open support threads.\n" +
		"\t`set_support_channel <channel>`\tText-command form of the above, invoked with my command prefix.\n" +
		"\t`set_command_prefix <prefix>`\tChange the prefix I listen for on text commands in this server.\n" +
		"\n" +
		"You can also DM me to open a support thread: your message becomes the thread title. " +
		"If we share more than one configured server, start the message with the target server's ID."
}
