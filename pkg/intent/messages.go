package intent

import "fmt"

// HelpMessage lista os comandos reconhecidos
const HelpMessage = `Here are the commands I understand (English & Roman Urdu):
- Send email / Email bhejo: I'll guide you step by step
- Create file / File banao: I'll ask for extension, name, and content
- Read file / File dikhao: Shows file contents
- Edit file / File edit karo: Opens file in editor for you to modify
- Delete file / File hatao: I'll ask you which file to delete
- Search files / File dhundo: Search for files by name
Just type a command or use the microphone to speak!
Tip: You can say "cancel" or "band karo" at any time to abort an operation.`

// WelcomeMessage é exibida ao iniciar uma nova sessão
const WelcomeMessage = `Hello! I'm your AI assistant. I can send emails and create, read, edit, delete or search files.
Just type a command or use the microphone to speak! I understand both English and Roman Urdu commands.
Voice examples: "email bhejo", "file banao", "file dikhao", "file delete karo"`

const unknownTemplate = `I'm not sure what you mean by %q. Try saying things like:
- "send email" or "email bhejo": to send an email
- "create file" or "file banao": to create a new file
- "read file notes.txt" or "file dikhao": to read a file
- "edit file notes.txt" or "file edit karo notes.txt": to edit a file
- "help" or "madad": to see all commands`

// UnknownMessage ecoa a entrada não reconhecida com exemplos de comandos
func UnknownMessage(input string) string {
	return fmt.Sprintf(unknownTemplate, input)
}
