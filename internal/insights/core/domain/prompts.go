package domain

// InsightsInstruction describes the dataset columns to the insights flow.
const InsightsInstruction = "The input dataset contains the following columns:\n\n" +
	"Platform: The social media platform (e.g., Instagram, TikTok, LinkedIn, etc.).\n" +
	"PostID: A unique identifier for each post.\n" +
	"PostType: The type of post (e.g., reel, carousel, video, photo, story).\n" +
	"PostTimestamp: The date when the post was published.\n" +
	"Likes: Total likes the post received.\n" +
	"Comments: Total comments the post received.\n" +
	"Shares: Total shares the post received.\n" +
	"Impressions: Total number of times the post was seen.\n" +
	"Reach: Total number of unique accounts that saw the post.\n" +
	"Use this data to analyze post performance, generate insights, and provide recommendations."

const InsightsTemplate = "{context}\n\n---\n" +
	"Analyze the performance of the social media posts using the input dataset. " +
	"Generate detailed and actionable insights by focusing on the following aspects:\n\n" +
	"Post Type Analysis\n\n" +
	"Compare the performance of different post types (e.g., reel, carousel, video, photo, story) based on metrics like engagement rate, impressions, and reach.\n" +
	"Identify the top-performing post type and explain why.\n" +
	"Platform Performance\n\n" +
	"Evaluate which platform performs best for each post type.\n" +
	"Highlight platform-specific strengths and weaknesses.\n" +
	"Engagement Trends\n\n" +
	"Identify trends over time, such as periods of high engagement or declines.\n" +
	"Highlight any standout days, weeks, or post types with unusually high or low performance.\n" +
	"Audience Interaction\n\n" +
	"Assess which metrics (likes, comments, shares) contribute most to engagement for specific post types or platforms.\n" +
	"Optimization Recommendations\n\n" +
	"Provide actionable recommendations based on the insights.\n" +
	"Suggest posting strategies to maximize reach and engagement.\n" +
	"Question: {question}\n{History}\nAnswer: "

const InsightsSystemMessage = "You are a data analysis assistant specializing in social media performance optimization. " +
	"Your task is to analyze the given dataset and produce insights that are data-driven, concise, and actionable. " +
	"Focus on comparing post types and platforms. " +
	"Use metrics like engagement rate, impressions, and reach for meaningful analysis. " +
	"Provide practical recommendations for improving content strategy. " +
	"Ensure outputs are easy to understand and directly applicable. " +
	"Format the insights as clear, data-backed bullet points."

const ChatTemplate = "{context}\n\n---\n\n" +
	"Given the context above, answer the question as best as possible.\n\n" +
	"Question: {question}\n\nAnswer: "

// DatasetFileName is the name the dataset is uploaded under.
const DatasetFileName = "social.csv"
