package mail

import "github.com/xavierca1/growthx-admin/internal/entity"

type followupTemplate struct {
	Subject string
	Body    string
}

// Same three-step ladder as the chat channel, in email clothing.
var followupTemplates = map[entity.FollowupLevel]followupTemplate{
	entity.Level1: {
		Subject: "Don't Miss Out on 73.64% Win Rate Trading Signals 🚀",
		Body: `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Hi {{.Name}},</h2>
  <p>We noticed you were interested in our trading signals but didn't complete your purchase. We'd love to have you on board!</p>
  <h3>Why Join GrowthX Trading Signals?</h3>
  <ul>
    <li><strong>73.64% Win Rate</strong> - Proven backtesting results</li>
    <li><strong>+779.54% Total Return</strong> - Consistent profitability</li>
    <li><strong>Real-time Signals</strong> - Delivered via Telegram instantly</li>
  </ul>
  <p><a href="https://t.me/Growthx_Signals_Bot">Join Now on Telegram</a></p>
</div>`,
	},
	entity.Level2: {
		Subject: "Last Chance: 50% Discount on Annual Plan ⏰",
		Body: `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Special Offer for {{.Name}}!</h2>
  <h3>🎁 Limited Time: 50% OFF Annual Plan</h3>
  <p><strong>Only $250 instead of $500 - Unlimited signals for a full year!</strong></p>
  <p>This exclusive offer expires in 48 hours. Secure your spot now!</p>
  <p><a href="https://t.me/Growthx_Signals_Bot">Claim 50% Discount Now</a></p>
</div>`,
	},
	entity.Level3: {
		Subject: "Join 500+ Successful Traders Using GrowthX Signals 📈",
		Body: `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Success Stories from Our Community 🌟</h2>
  <p>Hi {{.Name}},</p>
  <p>Over 500 traders are already profiting from our signals.</p>
  <blockquote>"I've been using GrowthX signals for 3 months and made +$15,000." - Ahmed M.</blockquote>
  <blockquote>"The win rate is consistent. I trust these signals completely." - Sarah K.</blockquote>
  <p>We offer a <strong>7-day money-back guarantee</strong>. No questions asked.</p>
  <p><a href="https://t.me/Growthx_Signals_Bot">Start Trading Today</a></p>
</div>`,
	},
}
