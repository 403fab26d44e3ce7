package prompt

/* =================================================================================
						PROMPT TEMPLATES & GUIDANCE TABLES
	These constants are the instruction text sent to the generation backend.
	The interpolation points and conditional blocks are part of the contract
	with the model; handlers must not edit the rendered output.
=================================================================================*/

// fitnessAnalysisTemplate summarizes the user's current condition. It
// explicitly forbids a workout plan so that the three fanned-out prompts
// stay disjoint in content.
const fitnessAnalysisTemplate = `## Generate a User Fitness Overview (DO NOT Include a Workout Plan)

**User Profile:**
- **BMI Status:** %s
- **Hypertension:** %s
- **Diabetes:** %s
- **Age:** %d
- **Workout Location:** %s
- **Workout Experience Level:** %s

**Medical & Health Advisory:**
%s

**Exercise Recommendation:**
%s

### **Instructions:**
- **DO NOT generate any workout plan here.**
- **ONLY summarize the user's current fitness condition.**
- **Provide a clear and concise analysis of their fitness level.**
- **Avoid excessive detail, keep it structured and to the point.**
- **Format the output cleanly in markdown for readability.**
- **Use a human friendly tone; address the reader directly as 'you', never as 'the user' or 'the individual'.**`

const (
	medicalWarningNone    = "**No medical restrictions detected. Proceed with workouts safely.**"
	medicalWarningPresent = "**Medical conditions detected. Consult a doctor before starting any intense workouts.**"

	exerciseAdvisorySafe           = "**Safe to exercise with structured progression.**"
	exerciseAdvisoryNotRecommended = "**Exercise Not Recommended. Consult a doctor before engaging in workouts.**"
)

// workoutPlanTemplate mandates the exact output shape: short intro, one
// markdown table covering the whole plan duration, progression guidance,
// and a conditional medical/recovery section.
const workoutPlanTemplate = `## Generate a Structured %s Workout Plan

**User Details:**
- **Fitness Goal:** %s
- **Workout Experience Level:** %s
- **Workout Preference:** %s
- **Workout Location:** %s

**Instructions:**
- **You MUST return the output in the following structured format:**

### **Output Pattern & Flow**
1. **Introduction (1-2 lines MAX)**
- Summarize the workout goal and experience level.
- Do **not** include a fitness assessment, only brief context.

2. **Table Format Workout Plan**
- Provide a **markdown table** with the following columns:
    - ` + "`Day`, `Exercise`, `Sets`, `Reps`, `Equipment Needed`, `Additional Notes`" + `
- Ensure a mix of **warm-up, main exercises, and cool-down/stretching** for each session.
- **If the user is a beginner**, provide **brief step-by-step execution instructions** in "Additional Notes".
- **If the user is an expert**, use **advanced fitness terminology** and strategies such as **periodization and progressive overload**.

3. **Progression & Scaling**
- Explain how intensity increases weekly for progression.
- Include guidance on when to increase weights or reps.

4. **Medical & Recovery Advisory (If Applicable)**
- **If the user has hypertension/diabetes**, include a line advising them to consult a medical professional.
- Emphasize the importance of **hydration, mobility work, and recovery**.

**Additional Guidelines:**
- Use **structured markdown formatting** with a **clean and professional layout**.
- **DO NOT** provide random tips or unrelated fitness advice; stay within the structured scope.
- Ensure each workout day is well-defined and **logically progressive**.
- Keep the response **clear, structured, and professional**.
- **Your response must ONLY include the requested information, nothing extra.**

- The final output must contain a table that represents the whole time span of the workout plan.
- If there is a medical condition like hypertension or diabetes, the final output must contain a line advising the user to consult a medical professional.

%s
%s
%s
%s`

const (
	experienceBeginner     = "Use simple and easy-to-follow exercise instructions with clear explanations."
	experienceIntermediate = "Use structured progressive overload training to help the user build strength and endurance."
	experienceExpert       = "Include advanced strength training techniques, high-intensity conditioning, and periodization strategies."
	experienceDefault      = "Provide a well-balanced structured training plan."

	locationHome = "Design the workout using bodyweight exercises, resistance bands, and dumbbells (if available). Avoid exercises requiring large gym machines."
	locationGym  = "Include full gym workouts with machines, barbells, and free weights to maximize strength and conditioning."

	preferenceStrength = "Focus on heavy compound movements like squats, deadlifts, bench press, and overhead press. Use progressive overload principles and ensure proper recovery."
	preferenceCardio   = "Prioritize endurance-based exercises such as HIIT, steady-state running, cycling, and jump rope. Optimize for cardiovascular improvement and stamina."
	preferenceHybrid   = "Design a hybrid training plan that includes both strength training and cardiovascular workouts for balanced fitness development."

	workoutMedicalAdvisory = "**Medical Advisory:** The user has hypertension or diabetes. Ensure all exercises are safe and avoid excessive high-intensity stress. Always recommend consulting a medical professional before starting this program."
)

// nutritionTipsTemplate requests a meal table split into Breakfast, Lunch,
// Dinner and Snacks, and forbids workout content.
const nutritionTipsTemplate = `## Generate a Structured Nutrition Plan (No Workout Plan)

**User Profile:**
- **BMI Status:** %s
- **Fitness Goal:** %s
- **Hypertension:** %s
- **Diabetes:** %s

%s

**Hydration Tip:** Aim for 2.5-3L water per day.

%s

### **Instructions:**
- **ONLY generate a structured nutrition plan based on BMI and fitness goals.**
- **DO NOT provide a workout plan or fitness assessment.**
- **Provide a markdown table with meal recommendations, divided into Breakfast, Lunch, Dinner, and Snacks.**
- **Ensure the meal plan aligns with the user's dietary needs and medical conditions.**
- **Keep the response structured, clear, and professional.**`

const (
	bmiGuidanceUnderweight = "**Underweight:** Prioritize calorie-dense, high-protein meals to support weight gain."
	bmiGuidanceNormal      = "**Normal Weight:** Maintain a balanced macronutrient intake for overall health."
	bmiGuidanceOverweight  = "**Overweight:** Focus on portion control, high-fiber meals, and steady energy balance."
	bmiGuidanceObese       = "**Obese:** Reduce calorie intake, prioritize whole foods, and maintain hydration."

	goalMuscleGain = "**Muscle Gain:** High-protein diet with complex carbohydrates and healthy fats."
	goalWeightLoss = "**Weight Loss:** Caloric deficit, fiber-rich foods, and lean proteins."
	goalWeightGain = "**Healthy Weight Gain:** Increase healthy calorie intake through nutrient-dense foods."
	goalDefault    = "**General Nutrition Plan:** Balanced macronutrients."

	nutritionMedicalAdvisory = "**Medical Advisory:** The user has hypertension or diabetes. Recommend heart-healthy, low-sodium, and balanced blood sugar meals. Advise consultation with a medical professional."
)

// userConcernTemplate addresses a single free-text concern.
const userConcernTemplate = `## Addressing Your Concern: %s

%s

### **Instructions:**
- **Provide a structured, friendly response addressing this concern.**
- **Avoid technical jargon; keep the explanation simple and actionable.**
- **Ensure the tone is warm, supportive, and motivating.**
- **Use direct language, referring to the reader as 'you' instead of 'individual' or 'user'.**
- **Format the response clearly using markdown for better readability.**
- **Limit the response to practical, easy-to-follow advice without unnecessary details.**`

// concernGuidance maps known concern topics (lower-cased) to curated advice.
var concernGuidance = map[string]string{
	"injury prevention":  "**Injury Prevention Tips:** Ensure proper warm-up, maintain good form, and avoid overtraining.",
	"motivation":         "**Staying Motivated:** Set realistic goals, track progress, and find a supportive workout environment.",
	"workout recovery":   "**Recovery & Rest:** Prioritize sleep, stretch regularly, and stay hydrated for optimal muscle recovery.",
	"nutrition guidance": "**Nutrition Basics:** Balance protein, carbs, and healthy fats for sustained energy and performance.",
	"supplements":        "**Supplement Use:** Consult a professional before taking supplements to ensure they match your fitness goals.",
	"joint health":       "**Joint Protection:** Strengthen stabilizing muscles, use controlled movements, and avoid excessive impact.",
	"mental health":      "**Mental Well-being:** Regular exercise can reduce stress, improve focus, and enhance overall mood.",
	"muscle soreness":    "**Managing Soreness:** Use foam rolling, gentle stretching, and adequate hydration for faster recovery.",
}

const concernGuidanceDefault = "**General Wellness Advice:** Stay consistent, listen to your body, and adapt workouts as needed."

// profileContextTemplate summarizes session context ahead of a concern
// prompt. Absent values render as "Not provided".
const profileContextTemplate = `**User Context:**
- **Fitness Goal:** %s
- **Experience Level:** %s
- **Workout Preference:** %s
- **Workout Location:** %s
- **Hypertension:** %s
- **Diabetes:** %s

`
