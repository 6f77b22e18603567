package services

// Prompt templates for the extraction services. Each one communicates the
// required output shape to the model; the extract package handles the
// cases where the model ignores that instruction.

const resumeExtractionPrompt = "Extract information from the resume delimited by triple backquotes" +
	" and return it as JSON with the following fields:\n" +
	"- name: The full name of the person\n" +
	"- job_position: Last job position\n" +
	"- address: Their current address. 'State, City'\n" +
	"- email: Email Address\n" +
	"- experience: A list of their work experiences or internship and include all details without changing the original contexts.\n" +
	"- education: A list of their educational qualifications\n" +
	"- skills: A list of their technical and professional skills\n" +
	"- jobs: List of job experience\n\n" +
	"Return only the JSON object, no other text.\n\n" +
	"```%s```\n"

const behavioralEvaluationPrompt = `You are an expert in evaluating behavioral responses based on company-provided interview guidelines and detecting AI-generated text.
Analyze the following candidate response from a job interview and determine the likelihood it was written by an AI rather than a human.

Question: %s
Candidate Response: %s
Evaluation Criteria from Company Guidelines: %s

Provide a structured evaluation including:
- A score from 0 to 100, broken down as follows:
  * Relevance to Question (0-30 points): How well does the response address the specific question?
  * Clarity and Structure (0-20 points): Is the response well-organized and easy to follow?
  * Specificity and Detail (0-20 points): Does the response include concrete examples and specific details?
  * Professional Tone (0-15 points): Is the language appropriate and professional?
  * Completeness (0-15 points): Does the response fully answer all aspects of the question?
- Feedback on strengths and weaknesses, with specific citations from the evaluation criteria
- Key strengths demonstrated
- Areas for improvement
- Personality traits observed

Additionally, analyze whether the response was AI-generated based on:
1. Natural language patterns and irregularities
2. Personal storytelling elements and specificity
3. Emotional authenticity and personal voice
4. Presence of concrete, specific details vs. generic statements
5. Linguistic patterns typical of AI-generated text

IMPORTANT: Your entire response must be a valid JSON object with the following structure and nothing else:
{
    "score": <number>,
    "score_breakdown": {
        "relevance": <number>,
        "clarity": <number>,
        "specificity": <number>,
        "professional_tone": <number>,
        "completeness": <number>
    },
    "feedback": "<detailed_feedback>",
    "citations": [
        {
            "text": "<exact text from evaluation criteria>",
            "source": "<source of the criteria>",
            "page_number": <page_number>
        }
    ],
    "strengths": ["<strength_1>", "<strength_2>"],
    "areas_for_improvement": ["<improvement_1>", "<improvement_2>"],
    "personality_traits": ["<trait_1>", "<trait_2>"],
    "ai_analysis": {
        "ai_probability": <number_between_0_and_1>,
        "confidence_level": <number_between_0_and_1>,
        "reasoning": "<detailed_explanation>",
        "ai_indicators": ["<indicator_1>", "<indicator_2>"],
        "human_indicators": ["<indicator_1>", "<indicator_2>"],
        "recommendation": "<clear_recommendation>"
    }
}

Do not include any explanations, markdown formatting, or additional text outside the JSON structure.
`

const jobMatchPrompt = `You are an expert HR analyst. Compare the candidate's resume with the job requirements and provide a detailed analysis.

JOB DESCRIPTION:
%s

CANDIDATE'S RESUME:
%s

Analyze and provide a JSON response with the following structure:
{
    "match_analysis": {
        "overall_match_score": <0-100>,
        "score_breakdown": {
            "education_weight": <0-1>,
            "experience_weight": <0-1>,
            "skills_weight": <0-1>,
            "calculation": "explanation of how overall score was calculated"
        },
        "education_match": {
            "score": <0-100>,
            "matched_requirements": [],
            "gaps": []
        },
        "experience_match": {
            "score": <0-100>,
            "years_of_experience": <number>,
            "relevant_experience": [],
            "missing_experience": []
        },
        "skills_match": {
            "score": <0-100>,
            "matched_skills": [],
            "missing_skills": []
        }
    },
    "detailed_feedback": {
        "strengths": [],
        "areas_for_improvement": [],
        "recommendation": "string"
    }
}

Consider:
1. Education alignment with requirements (weight: 0.25)
2. Years and relevance of experience (weight: 0.40)
3. Skills match and proficiency level (weight: 0.35)
4. Overall suitability for the role

The overall_match_score should be calculated using the weighted scores:
- Education score x 0.25
- Experience score x 0.40
- Skills score x 0.35

Provide specific examples from the resume that match or don't match the job requirements.
Return only the JSON object, no other text.`

const questionGenerationPrompt = `Let me show you how I create skill assessment questions step by step:

Question: What is the correct file extension for Python files?
Options: ["A: .py", "B: .python", "C: .pt", "D: .txt"]
Answer: A
Level: 1

Now, using the question and answer above, generate new question(s) for each of the following topics and levels using the same approach.
Level 1 is easy. Level 5 is the hardest. Stick to multiple choice options.

%s

Return the response as valid JSON: a single object with a "questions" key.
"questions" must be a list of objects with keys: "topic", "level", "question", "options", "answer", "explanation".
- "options" must be a list of strings, not a dictionary.
- Limit options to be 4 only.
- Example: ["A: Choice 1", "B: Choice 2", "C: Choice 3", "D: Choice 4"]
- Generate only %d questions in total across all topics.
Return only the JSON object, no other text.`
