package lessons

type dataTypes struct{}

var pythonTypes = []struct{ name, example, desc string }{
	{"int", "42, -7, 0", "Whole numbers: epoch counts, class labels."},
	{"float", "3.14, -0.001", "Decimals: weights, learning rates, probabilities."},
	{"str", `"hello", "relu"`, "Text: model names, file paths, activation types."},
	{"bool", "True, False", "Binary flags: is_training, use_dropout."},
}

func (l *dataTypes) Render(f Frame) Page {
	w := f.PanelWidth(2)
	panels := make([]Panel, 0, len(pythonTypes))
	for _, t := range pythonTypes {
		lines := append([]string{t.example}, wrap(t.desc, w)...)
		panels = append(panels, Panel{Title: t.name, Lines: lines})
	}
	return Page{
		Title:  "Data Types & Variables",
		Intro:  "Python is **dynamically typed**: you don't declare types, Python infers them. ML code works mostly with floats and ints, and variable names should be descriptive.",
		Blocks: []Block{{Columns: 2, Panels: panels}},
		Code: `# ML variable declarations
learning_rate = 0.001          # float: model hyperparameter
epochs = 100                   # int: number of training rounds
model_name = "LinearRegressor" # str: for logging
is_training = True             # bool: controls dropout

# Type checking and conversion
print(type(learning_rate))     # <class 'float'>
x = int("42")                  # str -> int: 42
y = float(epochs)              # int -> float: 100.0
label = str(1)                 # int -> str: "1"

# Multiple assignment
w1, w2, b = 0.5, -0.3, 0.1`,
	}
}

type functionsLesson struct{}

func (l *functionsLesson) Render(Frame) Page {
	return Page{
		Title: "Functions",
		Intro: "Functions package reusable logic, and in ML nearly everything is one. Know the difference between **positional** arguments (order matters) and **keyword** arguments (name=value, any order).",
		Code: `# Define a function
def linear(x, w=1.0, b=0.0):
    """Linear transformation: y = wx + b"""
    return w * x + b

# Positional arguments (order matters)
result = linear(5, 2.0, -1.0)     # x=5, w=2.0, b=-1.0

# Keyword arguments (order doesn't matter)
result = linear(5, b=-1.0, w=2.0) # same result!

# Default values used when not passed
result = linear(5)                 # w=1.0, b=0.0 -> 5.0

# Functions returning multiple values
def train_epoch(model, data):
    loss = compute_loss(model, data)
    accuracy = compute_acc(model, data)
    return loss, accuracy           # returns a tuple

loss, acc = train_epoch(model, data)

# Lambda (anonymous) functions
square = lambda x: x ** 2
apply = lambda f, vals: [f(v) for v in vals]
squared = apply(square, [1, 2, 3, 4])  # [1, 4, 9, 16]`,
		Callout: &Callout{Title: "Common ML pattern", Body: "Keras uses keyword arguments everywhere: model.compile(optimizer='adam', loss='mse', metrics=['accuracy'])."},
	}
}

var structureTabs = []struct{ id, label, code string }{
	{"list", "List", `# Lists: ordered, mutable sequences
features = [1.2, 3.4, 5.6, 7.8]

# Access by index
first = features[0]         # 1.2
last  = features[-1]        # 7.8
slice = features[1:3]       # [3.4, 5.6]

# Modify
features.append(9.0)        # add to end
features[0] = 0.5           # update element

# List comprehension (very common in ML!)
squared = [x**2 for x in features]
filtered = [x for x in features if x > 3.0]
# filtered = [3.4, 5.6, 7.8, 9.0]`},
	{"dict", "Dict", `# Dicts: key -> value mapping
config = {
    "learning_rate": 0.001,
    "epochs": 100,
    "batch_size": 32,
    "optimizer": "adam"
}

# Access
lr = config["learning_rate"]          # 0.001
opt = config.get("optimizer", "sgd")  # "adam"

# Add / update
config["dropout"] = 0.5

# Iterate over key-value pairs
for key, value in config.items():
    print(f"{key}: {value}")

# Dict comprehension
doubled = {k: v*2 for k, v in config.items()
           if isinstance(v, (int, float))}`},
	{"set", "Set", `# Sets: unique values, unordered
categories = {"cat", "dog", "bird", "cat"}
print(categories)  # {"cat", "dog", "bird"} no duplicates!

# Set operations (useful for data splits!)
train_ids = {1, 2, 3, 4, 5}
test_ids  = {4, 5, 6, 7, 8}

overlap    = train_ids & test_ids     # {4, 5} intersection
all_ids    = train_ids | test_ids     # {1,2,3,4,5,6,7,8} union
train_only = train_ids - test_ids     # {1, 2, 3} difference

# Build vocabulary set
words = ["the","cat","sat","the","mat","cat"]
vocab = set(words)  # {"the", "cat", "sat", "mat"}
print(len(vocab))   # 4 unique words`},
}

type dataStructures struct{ tab int }

func newDataStructures() *dataStructures { return &dataStructures{} }

func (l *dataStructures) Controls() string { return "←/→ or tab switch structure" }

func (l *dataStructures) HandleKey(key string) bool {
	n := len(structureTabs)
	switch key {
	case "right", "tab":
		l.tab = (l.tab + 1) % n
		return true
	case "left":
		l.tab = (l.tab + n - 1) % n
		return true
	}
	return false
}

func (l *dataStructures) Render(Frame) Page {
	tabs := ""
	for i, t := range structureTabs {
		if i == l.tab {
			tabs += "[" + t.label + "] "
		} else {
			tabs += " " + t.label + "  "
		}
	}
	return Page{
		Title: "Lists, Dicts & Sets",
		Intro: "These three structures are the backbone of Python ML code. Lists hold ordered data, dicts map keys to values and sets store unique items.",
		Blocks: []Block{{Columns: 1, Panels: []Panel{
			{Title: "Structure", Lines: []string{tabs}},
		}}},
		Code: structureTabs[l.tab].code,
	}
}

type controlFlow struct{}

func (l *controlFlow) Render(Frame) Page {
	return Page{
		Title: "Loops & Conditionals",
		Intro: "Control flow directs program execution. Loops process whole datasets and conditionals branch on values. List comprehensions are the Pythonic shortcut used all over ML code.",
		Code: `# for loop: fundamental in ML training
for epoch in range(100):
    loss = train_one_epoch(model, data)
    print(f"Epoch {epoch}: loss={loss:.4f}")

# enumerate: get index + value
losses = [2.5, 1.8, 1.2, 0.9, 0.7]
for epoch, loss in enumerate(losses):
    print(f"Epoch {epoch}: {loss}")

# Multiple iterator variables (tuple unpacking)
pairs = [("w1", 0.5), ("w2", -0.3), ("b", 0.1)]
for name, value in pairs:
    print(f"  {name} = {value}")

# while: train until convergence
loss = 10.0
while loss > 0.01:
    loss = train_step(model)

# if / elif / else
def interpret_loss(loss):
    if loss > 5.0:
        return "Very high: check data/model"
    elif loss > 1.0:
        return "High: still improving"
    elif loss > 0.1:
        return "Good: nearly converged"
    else:
        return "Excellent!"

# Conditional expression (ternary)
prediction = "spam" if score > 0.5 else "ham"

# List comprehension
normalized = [x / 255.0 for x in pixel_values]
valid      = [x for x in data if x is not None]`,
	}
}
