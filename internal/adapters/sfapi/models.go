package sfapi

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Sessions []sessionInfo `json:"sessions"`
}

type sessionInfo struct {
	ID        string `json:"id"`
	Character string `json:"character"`
}

// commandRequest is the tagged command envelope the gateway dispatches.
type commandRequest struct {
	Type    string `json:"type"`
	Page    int    `json:"page,omitempty"`
	To      string `json:"to,omitempty"`
	Message string `json:"message,omitempty"`
}

type gameStateResponse struct {
	HallOfFame struct {
		Players []hallOfFamePlayer `json:"players"`
	} `json:"hall_of_fame"`
}

type hallOfFamePlayer struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Guild string `json:"guild,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
