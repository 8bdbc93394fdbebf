package telegram

import "github.com/xavierca1/growthx-admin/internal/entity"

// Fixed escalation ladder: reminder, discount, social proof. Each body
// takes the lead's first name.
var followupMessages = map[entity.FollowupLevel]string{
	entity.Level1: "<b>Don't Miss Out, %s! 🎯</b>\n\n" +
		"We noticed you're interested in our trading signals.\n\n" +
		"<b>Our Results:</b>\n" +
		"• 73.64%% Win Rate\n" +
		"• +779.54%% Total Return\n" +
		"• +12.99%% Monthly Average\n\n" +
		"Join our paid members and start receiving exclusive trading signals!\n\n" +
		"<b>Plans:</b>\n" +
		"• Monthly: $100\n" +
		"• Quarterly: $249.99\n" +
		"• VIP Unlimited: $500/year",

	entity.Level2: "<b>Limited Time Offer, %s! 🎁</b>\n\n" +
		"We're offering <b>50%% OFF</b> on annual plans this week only!\n\n" +
		"Instead of $500/year for VIP Unlimited, get it for just <b>$250</b>!\n\n" +
		"<b>What You Get:</b>\n" +
		"✅ Unlimited trading signals\n" +
		"✅ 5 concurrent positions\n" +
		"✅ Priority support\n" +
		"✅ 73.64%% win rate signals\n\n" +
		"This offer expires in 3 days. Don't miss out!",

	entity.Level3: "<b>See What Others Are Making, %s 💰</b>\n\n" +
		"\"I made $5,000 in the first month using these signals!\" - John M.\n\n" +
		"\"The accuracy is incredible. 73.64%% win rate is no joke!\" - Sarah T.\n\n" +
		"\"Best investment I've made. ROI is amazing!\" - Mike D.\n\n" +
		"Join hundreds of successful traders. Start today!\n\n" +
		"<b>Money-back guarantee:</b> not satisfied after 30 days, we refund 100%%",
}
