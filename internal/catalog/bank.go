package catalog

// bankQuestions returns the static question bank in test order: the math
// section followed by the reading & writing section.
func bankQuestions() []Question {
	out := make([]Question, 0, len(mathQuestions)+len(readingWritingQuestions))
	out = append(out, mathQuestions...)
	out = append(out, readingWritingQuestions...)
	return out
}

var mathQuestions = []Question{
	{ID: "m1", Section: SectionMath, Module: 1, Text: "If 5x + 6 = 10, what is the value of 5x + 3?", Options: []string{"1", "3", "4", "7"}, CorrectAnswer: "7", Topic: "Algebra", Difficulty: "Easy"},
	{ID: "m2", Section: SectionMath, Module: 1, Text: "A rectangular garden is 10 feet long and 5 feet wide. What is its area in square feet?", Options: []string{"15", "25", "50", "100"}, CorrectAnswer: "50", Topic: "Geometry", Difficulty: "Easy"},
	{ID: "m3", Section: SectionMath, Module: 1, Text: "What is 20% of 200?", Options: []string{"20", "40", "50", "100"}, CorrectAnswer: "40", Topic: "Problem-Solving and Data Analysis", Difficulty: "Easy"},
	{ID: "m4", Section: SectionMath, Module: 1, Text: "If a circle has a radius of 3, what is its circumference? (Use π ≈ 3.14)", Options: []string{"9.42", "18.84", "28.26", "6.00"}, CorrectAnswer: "18.84", Topic: "Geometry", Difficulty: "Medium"},
	{ID: "m5", Section: SectionMath, Module: 1, Text: "Solve for y: 3(y - 2) = 9", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "5", Topic: "Algebra", Difficulty: "Medium"},
	{ID: "m6", Section: SectionMath, Module: 1, Text: "A car travels 120 miles in 2 hours. What is its average speed in miles per hour?", Options: []string{"50 mph", "60 mph", "70 mph", "80 mph"}, CorrectAnswer: "60 mph", Topic: "Problem-Solving and Data Analysis", Difficulty: "Easy"},
	{ID: "m7", Section: SectionMath, Module: 1, Text: "What is the next number in the sequence: 2, 5, 8, 11, ...?", Options: []string{"12", "13", "14", "15"}, CorrectAnswer: "14", Topic: "Algebra", Difficulty: "Easy"},
	{ID: "m8", Section: SectionMath, Module: 1, Text: "If a triangle has angles 45°, 45°, and x°, what is the value of x?", Options: []string{"45°", "60°", "90°", "100°"}, CorrectAnswer: "90°", Topic: "Geometry", Difficulty: "Medium"},
	{ID: "m9", Section: SectionMath, Module: 1, Text: "Simplify the expression: (2^3) * (2^2)", Options: []string{"2^1", "2^5", "2^6", "4^5"}, CorrectAnswer: "2^5", Topic: "Algebra (Exponents)", Difficulty: "Medium"},
	{ID: "m10", Section: SectionMath, Module: 1, Text: "A survey of 50 students found that 30 like apples and 25 like bananas. If 10 students like both, how many students like neither?", Options: []string{"0", "5", "10", "15"}, CorrectAnswer: "5", Topic: "Problem-Solving and Data Analysis (Sets)", Difficulty: "Hard"},
}

var readingWritingQuestions = []Question{
	{ID: "rw1", Section: SectionReadingWriting, Module: 1, Passage: "The following is an excerpt from a short story...", Text: "What is Sarah's profession?", Options: []string{"Ghost hunter", "Historian", "Journalist", "Librarian"}, CorrectAnswer: "Journalist", Topic: "Information and Ideas", Difficulty: "Easy"},
	{ID: "rw2", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 2: Identify the main idea.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Topic: "Main Idea", Difficulty: "Medium"},
	{ID: "rw3", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 3: Vocabulary in context.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Topic: "Vocabulary", Difficulty: "Easy"},
	{ID: "rw4", Section: SectionReadingWriting, Module: 1, Passage: "This is a sample passage for rw4.", Text: "Placeholder R&W Question 4: Inference from passage.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C", Topic: "Inference", Difficulty: "Medium"},
	{ID: "rw5", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 5: Grammar usage.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "D", Topic: "Grammar", Difficulty: "Easy"},
	{ID: "rw6", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 6: Author's purpose.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Topic: "Author's Purpose", Difficulty: "Hard"},
	{ID: "rw7", Section: SectionReadingWriting, Module: 1, Passage: "Another sample passage for rw7.", Text: "Placeholder R&W Question 7: Detail from passage.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Topic: "Detail", Difficulty: "Easy"},
	{ID: "rw8", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 8: Sentence structure.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C", Topic: "Sentence Structure", Difficulty: "Medium"},
	{ID: "rw9", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 9: Tone of the passage.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "D", Topic: "Tone", Difficulty: "Medium"},
	{ID: "rw10", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 10: Comparative analysis.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Topic: "Analysis", Difficulty: "Hard"},
	{ID: "rw11", Section: SectionReadingWriting, Module: 1, Passage: "Passage for question rw11.", Text: "Placeholder R&W Question 11: Purpose of a paragraph.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Topic: "Paragraph Purpose", Difficulty: "Medium"},
	{ID: "rw12", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 12: Identify a logical flaw.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C", Topic: "Logical Reasoning", Difficulty: "Hard"},
	{ID: "rw13", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 13: Word choice.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "D", Topic: "Word Choice", Difficulty: "Medium"},
	{ID: "rw14", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 14: Punctuation.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Topic: "Punctuation", Difficulty: "Easy"},
	{ID: "rw15", Section: SectionReadingWriting, Module: 1, Passage: "Sample text for rw15.", Text: "Placeholder R&W Question 15: Evidence support.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Topic: "Evidence", Difficulty: "Medium"},
	{ID: "rw16", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 16: Literary device.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C", Topic: "Literary Devices", Difficulty: "Hard"},
	{ID: "rw17", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 17: Transition words.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "D", Topic: "Transitions", Difficulty: "Easy"},
	{ID: "rw18", Section: SectionReadingWriting, Module: 1, Text: "Placeholder R&W Question 18: Author's claim.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Topic: "Author's Claim", Difficulty: "Medium"},
	{ID: "rw19", Section: SectionReadingWriting, Module: 1, Passage: "Final placeholder passage for rw19.", Text: "Placeholder R&W Question 19: Summarize.", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Topic: "Summarization", Difficulty: "Medium"},
	{ID: "rw20", Section: SectionReadingWriting, Module: 1, Text: "The word 'ubiquitous' means:", Options: []string{"Rare and hard to find", "Present, appearing, or found everywhere", "Expensive and luxurious", "Temporary and fleeting"}, CorrectAnswer: "Present, appearing, or found everywhere", Topic: "Craft and Structure (Vocabulary)", Difficulty: "Hard"},
}
