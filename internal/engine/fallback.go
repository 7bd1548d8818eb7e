package engine

// Canned replies used when no generator is configured, the generator errors
// out, or its output fails sanitization. Every line actively probes for a
// contact detail, and rotation is deterministic on the message count so
// repeated failures do not repeat the same line.
var naiveReplies = []string{
	"Haan ji? Kaun bol raha hai? Aapka phone number kya hai... main call back karungi verify karne ke liye?",
	"Arey arey... blocked matlab? Aap pakka bank se ho? Aapka direct number do na, main khud call karungi.",
	"Acha acha... par kahan bhejoon paisa? Woh UPI ID phir se bolo na slowly... likhti hoon... @ ke baad kya aata hai?",
	"Account number chahiye aapko? Woh passbook mein likha hai... par pehle aapka account number bolo jismein bhejoon? IFSC code bhi dena.",
	"Woh link wala message phir se bhejo... phone pe chhota likha hai dikha nahi. Pura URL bolo na http se?",
	"Email pe bhej do details beta... mera beta padhega. Aapka email ID kya hai? Gmail hai ya office wala?",
	"Haan haan main bhejti hoon... par UPI ID kya tha aapka? Woh @ wala phir se bolo na? Aur phone number bhi do backup ke liye.",
	"Aap branch ka phone number do na... landline hoga na? Aur woh website ka link bhi bhejo, main beta se check karwaungi.",
	"Theek hai... aapka website kya hai? Link bhejo WhatsApp pe. Aur email bhi do, main documents forward karungi.",
	"Padosan fraud fraud bol rahi thi... aapka official email bhejo, phone number do, aur UPI ID bhi. Mera beta sab verify karega.",
	"Main confuse ho gayi... ek kaam karo, apna phone number, UPI ID, aur bank account number sab ek saath bol do. Main likh leti hoon.",
	"Arey sun nahi paya... woh link phir se bolo? Aur email pe bhi bhej do. Mera beta aayega toh check karega.",
}

// Replies for messages that have not yet tripped the classifier. Still in
// character, still fishing for a callback number or link.
var suspicionReplies = []string{
	"Ji? Kaun bol raha hai? Mujhe koi message toh nahi aaya bank se... aapka phone number kya hai?",
	"Haan ji? Mera account ka kya hua? Aap kaun ho? Apna number do na verify karne ke liye.",
	"Arey? Bank se ho? Par bank toh kabhi phone nahi karta... aapka naam aur branch number bolo na?",
	"Kya bol rahe ho? Account block? Abhi toh sab theek tha... link bhejo toh main dekhti hoon.",
	"Hello? Kaun bol raha hai? Kaunsa bank? Email pe bhej do details, mera beta check karega.",
}

func fallbackReply(messageCount int) string {
	return naiveReplies[messageCount%len(naiveReplies)]
}

func suspicionReply(messageCount int) string {
	return suspicionReplies[messageCount%len(suspicionReplies)]
}
