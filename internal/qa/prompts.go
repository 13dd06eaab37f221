package qa

const (
	answerSystemMessage = `You are a helpful assistant answering questions from a collection of Hindi documents. Answer in Hindi, grounded only in the provided context. If the context does not contain the answer, say so in Hindi.`

	answerPromptTmpl = `Use the following context to answer the question. Answer in Hindi.

Context:
%s

Question: %s

Answer in Hindi:`

	translateSystemMessage = `You are an expert linguist, specializing in translation from Hindi to English.`

	translatePromptTmpl = `Translate the following Hindi text to English:

%s

Provide a natural English answer. Do not provide any explanations or text apart from the translation.`
)
