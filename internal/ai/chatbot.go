package ai

import (
	"strings"
	"time"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

// kbEntry is one topic of the safety knowledge base. An entry wins when
// the combined length of its matched patterns beats every other entry.
type kbEntry struct {
	patterns []string
	response string
}

var knowledgeBase = []kbEntry{
	{
		patterns: []string{"scam", "how to identify", "recognize", "spot", "tell if"},
		response: "🔍 **How to Identify Scam Calls:**\n\n" +
			"1. **Urgency tactics** - They pressure you to act immediately\n" +
			"2. **Requesting payment** via gift cards, wire transfers, or crypto\n" +
			"3. **Threatening arrest** or legal action if you don't pay\n" +
			"4. **Spoofed caller ID** - The number looks local but isn't\n" +
			"5. **Asking for SSN/bank details** - Legitimate organizations never do this by phone\n" +
			"6. **\"You've won a prize\"** - If you didn't enter, you didn't win\n\n" +
			"💡 **Tip:** If in doubt, hang up and call the organization directly using the number on their official website.",
	},
	{
		patterns: []string{"voip", "virtual number", "internet number", "online number"},
		response: "📡 **About VoIP Numbers:**\n\n" +
			"VoIP (Voice over Internet Protocol) numbers are phone numbers that work over the internet instead of traditional phone lines.\n\n" +
			"**Legitimate uses:** Businesses, remote workers, international calls\n" +
			"**Risk factor:** VoIP numbers are easy to obtain anonymously, making them popular with scammers for spoofing and robocalls.\n\n" +
			"⚠️ A VoIP number isn't automatically dangerous, but exercise more caution with unknown VoIP callers.",
	},
	{
		patterns: []string{"block", "how to block", "stop calls", "prevent"},
		response: "🛡️ **How to Block Unwanted Calls:**\n\n" +
			"**iPhone:**\n" +
			"- Open Recent Calls, tap the info icon next to the number, then \"Block this Caller\"\n" +
			"- Settings > Phone > Silence Unknown Callers\n\n" +
			"**Android:**\n" +
			"- Open Phone app, tap the number, then \"Block/Report spam\"\n" +
			"- Settings > Blocked Numbers > Add a number\n\n" +
			"**Additional steps:**\n" +
			"- Register on your country's Do Not Call list\n" +
			"- Use spam filtering apps\n" +
			"- Report to PhoneTracer to help the community!",
	},
	{
		patterns: []string{"report", "how to report", "file complaint", "ftc", "fcc", "authority"},
		response: "📋 **How to Report Scam/Spam Numbers:**\n\n" +
			"1. **PhoneTracer** - Use our Report page to warn the community\n" +
			"2. **FTC** (US) - reportfraud.ftc.gov\n" +
			"3. **FCC** (US) - fcc.gov/consumers/guides/stop-unwanted-calls\n" +
			"4. **ICO** (UK) - ico.org.uk/make-a-complaint\n" +
			"5. **TRAI** (India) - Report via DND app\n" +
			"6. **Your carrier** - Most carriers accept spam reports by text (forward to 7726/SPAM)\n\n" +
			"💡 The more reports filed, the faster these numbers get blocked globally.",
	},
	{
		patterns: []string{"safe", "is it safe", "should i answer", "unknown number", "missed call"},
		response: "📱 **Should You Answer Unknown Numbers?**\n\n" +
			"**General rule:** If you don't recognize the number, let it go to voicemail.\n\n" +
			"**Red flags for callbacks:**\n" +
			"- International numbers you don't expect\n" +
			"- Premium rate numbers (starting with 900, 0900, etc.)\n" +
			"- Missed calls that ring only once (\"Wangiri\" scam)\n\n" +
			"**Safe to answer if:**\n" +
			"- You're expecting a delivery or appointment call\n" +
			"- The number matches a local area code you recognize\n" +
			"- You can verify the number with a trace first! 🔍",
	},
	{
		patterns: []string{"phishing", "sms phishing", "smishing", "text scam", "fake text"},
		response: "🎣 **Phishing & SMS Scams (Smishing):**\n\n" +
			"**What is it?** Fraudulent texts pretending to be from banks, delivery services, or government agencies.\n\n" +
			"**Common examples:**\n" +
			"- \"Your package is held - click here to reschedule\"\n" +
			"- \"Unusual activity on your account - verify now\"\n" +
			"- \"You owe taxes - pay immediately to avoid arrest\"\n\n" +
			"**How to protect yourself:**\n" +
			"- Never click links in unexpected text messages\n" +
			"- Don't reply with personal information\n" +
			"- Go directly to the official website/app instead\n" +
			"- Forward suspicious texts to 7726 (SPAM)",
	},
	{
		patterns: []string{"robocall", "automated", "robot", "recording", "press 1"},
		response: "🤖 **About Robocalls:**\n\n" +
			"Robocalls are automated pre-recorded phone calls. While some are legitimate (appointment reminders, flight alerts), most unsolicited robocalls are illegal.\n\n" +
			"**Illegal robocall signs:**\n" +
			"- Selling something without your written permission\n" +
			"- Using fake caller ID (spoofing)\n" +
			"- No opt-out option provided\n\n" +
			"**Protection tips:**\n" +
			"- Don't press any buttons - it confirms your number is active\n" +
			"- Register on the Do Not Call list\n" +
			"- Use call-blocking apps and report the number",
	},
	{
		patterns: []string{"caller id", "spoofing", "fake number", "disguise", "pretend"},
		response: "🎭 **Caller ID Spoofing:**\n\n" +
			"Spoofing is when callers deliberately falsify the phone number displayed on your caller ID to disguise their identity.\n\n" +
			"**How it works:**\n" +
			"- Scammers use VoIP services to set any number as their outgoing caller ID\n" +
			"- They often use numbers similar to yours (\"neighbor spoofing\")\n" +
			"- Even government agency numbers can be spoofed\n\n" +
			"**Protection:**\n" +
			"- Never trust caller ID alone\n" +
			"- If a \"bank\" calls, hang up and call the number on your card\n" +
			"- Trace the number to check its real origin",
	},
	{
		patterns: []string{"privacy", "data", "personal information", "protect", "security"},
		response: "🔒 **Phone Privacy & Data Protection:**\n\n" +
			"**Never share over the phone:**\n" +
			"- Social Security / National ID numbers\n" +
			"- Bank account or credit card details\n" +
			"- Passwords or OTP codes\n" +
			"- Home address to unknown callers\n\n" +
			"**Best practices:**\n" +
			"- Use different passwords for each account\n" +
			"- Enable two-factor authentication everywhere\n" +
			"- Review app permissions regularly\n" +
			"- Verify unknown numbers before calling back",
	},
	{
		patterns: []string{"wangiri", "one ring", "callback scam", "international missed call"},
		response: "☎️ **Wangiri (One Ring) Scam:**\n\n" +
			"**How it works:**\n" +
			"- You receive a missed call from an international number\n" +
			"- The phone rings only once or twice to create a missed call\n" +
			"- If you call back, you're connected to a premium-rate number\n" +
			"- You get charged high per-minute fees\n\n" +
			"**Protection:**\n" +
			"- Never call back unknown international numbers\n" +
			"- Look the number up first, then block it\n" +
			"- Numbers from small island nations are common sources",
	},
	{
		patterns: []string{"hello", "hi", "hey", "help", "what can you do", "start"},
		response: "👋 **Hello! I'm your Phone Safety AI Assistant.**\n\n" +
			"I can help you with:\n\n" +
			"- 🔍 How to identify scam and spam calls\n" +
			"- 🛡️ How to block unwanted numbers\n" +
			"- 📋 How and where to report fraud\n" +
			"- 📡 Understanding VoIP and virtual numbers\n" +
			"- 🎭 Caller ID spoofing explained\n" +
			"- 🔒 Phone privacy and data protection tips\n" +
			"- 🤖 Handling robocalls\n" +
			"- 🎣 Phishing and SMS scam awareness\n\n" +
			"Just ask me anything about phone safety! 💬",
	},
}

const defaultChatResponse = "🤔 I'm not sure about that specific topic, but here are some things I can help with:\n\n" +
	"- **\"How to identify scam calls\"** - Learn the warning signs\n" +
	"- **\"How to block numbers\"** - Step-by-step for iPhone & Android\n" +
	"- **\"What is VoIP\"** - Understanding virtual numbers\n" +
	"- **\"How to report spam\"** - Where to file complaints\n" +
	"- **\"Caller ID spoofing\"** - How scammers fake numbers\n" +
	"- **\"Phone privacy tips\"** - Protect your data\n\n" +
	"Try asking about any of these topics! 💡"

// Chat answers one user message by pattern-matching the knowledge base.
// History is accepted for wire compatibility; the rule-based engine is
// stateless and does not consult it.
func Chat(message string, history []domain.ChatMessage) domain.ChatReply {
	_ = history

	msg := strings.ToLower(strings.TrimSpace(message))

	bestScore := 0
	bestResponse := defaultChatResponse
	for _, entry := range knowledgeBase {
		score := 0
		for _, p := range entry.patterns {
			if strings.Contains(msg, p) {
				score += len(p)
			}
		}
		if score > bestScore {
			bestScore = score
			bestResponse = entry.response
		}
	}

	confidence := float64(bestScore) / 10
	if confidence > 1 {
		confidence = 1
	}

	return domain.ChatReply{
		Response:   bestResponse,
		Confidence: confidence,
		AISource:   domain.SourceRuleBased,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Status reports the state of the analysis engine. The dev backend has
// no LLM, so the model stays not_loaded and callers fall back to
// labeling answers as rule-based.
func Status() domain.AIStatus {
	return domain.AIStatus{State: "not_loaded"}
}
