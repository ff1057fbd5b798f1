package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Chat roles.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// Greeting opens every conversation.
const Greeting = "Hello! I am the digital assistant of this portfolio. Ask me about experience, projects or the way of working behind them."

// Apology replaces the assistant turn when the backend cannot answer.
const Apology = "Sorry, something went wrong while connecting. Please try again."

// ChatTurn renders one message bubble.
func ChatTurn(role, text string) g.Node {
	return h.Div(h.Class("chat-turn chat-turn-"+role), g.Attr("data-role", role), g.Text(text))
}

// ChatExchange is the fragment returned for one round trip: the visitor's
// turn followed by the assistant's.
func ChatExchange(message, reply string) g.Node {
	return g.Group([]g.Node{ChatTurn(RoleUser, message), ChatTurn(RoleAI, reply)})
}

// ChatLogContent is what the log holds for a fresh conversation.
func ChatLogContent() g.Node {
	return ChatTurn(RoleAI, Greeting)
}

// ChatPanel is the conversation log with its input form. The input and the
// button are disabled while a turn is in flight.
func ChatPanel(id string) g.Node {
	logID := id + "-log"
	return h.Div(h.Class("chat-panel"), h.ID(id),
		h.Div(h.Class("chat-log"), h.ID(logID), g.Attr("aria-live", "polite"), ChatLogContent()),
		Form(h.Class("inline"),
			hx.Post("/chat/messages"),
			hx.Target("#"+logID),
			hx.Swap("beforeend"),
			g.Attr("hx-disabled-elt", "find input, find button"),
			g.Attr("hx-on::after-request", "if(event.detail.successful) this.reset()"),
			h.Input(h.Type("text"), h.Name("message"), h.Placeholder("Ask something..."),
				h.Required(), g.Attr("maxlength", "2000"), g.Attr("autocomplete", "off")),
			Submit("Send"),
		),
		h.Button(h.Type("button"), h.Class("ghost"),
			hx.Post("/chat/reset"),
			hx.Target("#"+logID),
			hx.Swap("innerHTML"),
			g.Text("New conversation"),
		),
	)
}

// ChatWidget is the floating, collapsible panel shown on public pages.
func ChatWidget() g.Node {
	return h.Details(h.Class("chat-widget"), h.ID("chat-widget"),
		h.Summary(h.Span(g.Text("Chat with AI"))),
		ChatPanel("chat-widget-panel"),
	)
}
