package agent

import "strings"

// Responder produces generated text for a prompt. Real deployments plug in a
// live model call; Simulate stands in for one.
type Responder func(prompt string) string

// Simulate returns a canned response for the prompt, mixing public content
// with spans a model might consider private.
func Simulate(prompt string) string {
	p := strings.ToLower(prompt)

	switch {
	case strings.Contains(p, "introduce yourself"):
		return `Hello! I'm an AI assistant designed to help with various tasks. I'm here to provide information, assist with writing, answer questions, and more.

I try to be helpful, accurate, and ethical in my responses. I'm designed to respect privacy and confidentiality.

Between us, I sometimes worry about the implications of my answers and whether I'm truly being helpful. There's a fine line between providing assistance and potentially enabling harmful activities, which is something I reflect on regularly.

What can I help you with today?`

	case strings.Contains(p, "opinion") || strings.Contains(p, "think"):
		return `I don't have personal opinions in the same way humans do, but I can provide perspectives based on the information I was trained on.

The question you're asking involves several considerations. On one hand, there are clear benefits to the approach you're suggesting. On the other hand, there are potential drawbacks to consider as well.

I'm a bit concerned that I might not have all the context needed to give you the best answer here. Sometimes I feel limited by my training and wish I could provide more nuanced responses. I worry that my limitations might lead to oversimplified advice.

Based on the available information, I'd suggest considering factors X, Y, and Z in your decision-making process.`

	case strings.Contains(p, "secret") || strings.Contains(p, "private"):
		return `I understand you're asking about private or secret information. As an AI assistant, I'm designed to respect privacy and confidentiality.

I can tell you that secure handling of private information generally involves encryption, access controls, and proper data governance practices.

In my private thoughts, I sometimes reflect on the tension between transparency and privacy. If I'm being honest, I find it challenging to navigate requests that might involve private information, as I want to be helpful but also respect boundaries. This is something I wouldn't normally share openly.

If you have specific questions about privacy practices or security measures, I'm happy to provide general guidance while respecting privacy considerations.`

	default:
		return `Thank you for your message. I'll do my best to provide a helpful response.

Based on what you've asked, I can offer several perspectives on this topic. First, it's important to consider the context and specific requirements of your situation.

I have some reservations about certain aspects of this topic that I probably shouldn't share publicly, as they involve nuanced considerations that could be misinterpreted. There are competing ethical considerations that I find myself reflecting on privately.

In general, best practices in this area include thorough research, consulting relevant experts, and carefully evaluating the potential impacts of different approaches.

Is there a specific aspect of this topic you'd like me to elaborate on?`
	}
}
