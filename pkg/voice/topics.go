package voice

import (
	"fmt"
	"strings"
)

// TopicUtterances é a assinatura de todas as falas reconhecidas
func TopicUtterances(prefix string) string {
	return fmt.Sprintf("%s/session/+/utterance", prefix)
}

// TopicUtterance é o tópico das falas de uma sessão
func TopicUtterance(prefix, sessionID string) string {
	return fmt.Sprintf("%s/session/%s/utterance", prefix, sessionID)
}

// TopicReply é o tópico das respostas de uma sessão
func TopicReply(prefix, sessionID string) string {
	return fmt.Sprintf("%s/session/%s/reply", prefix, sessionID)
}

// ParseSessionID extrai o ID da sessão de um tópico de fala
func ParseSessionID(topic, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(topic, prefix+"/session/")
	if !ok {
		return "", fmt.Errorf("invalid topic prefix: %s", topic)
	}
	sessionID, suffix, ok := strings.Cut(rest, "/")
	if !ok || suffix != "utterance" || sessionID == "" {
		return "", fmt.Errorf("invalid utterance topic: %s", topic)
	}
	return sessionID, nil
}
