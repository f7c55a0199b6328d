package image

type dishImage struct {
	name string
	url  string
}

const (
	vegRecipes     = "https://www.vegrecipesofindia.com/wp-content/uploads/"
	healthyRecipes = "https://www.indianhealthyrecipes.com/wp-content/uploads/"
)

// dishImages 常見印度菜的圖片，部分比對時依此順序
var dishImages = []dishImage{
	// 米飯
	{"jeera rice", vegRecipes + "2013/07/jeera-rice-recipe-1.jpg"},
	{"cumin rice", vegRecipes + "2013/07/jeera-rice-recipe-1.jpg"},
	{"fried rice", vegRecipes + "2020/01/veg-fried-rice-1.jpg"},
	{"vegetable rice", vegRecipes + "2020/01/veg-fried-rice-1.jpg"},
	{"tomato rice", vegRecipes + "2014/06/tomato-rice-recipe-1.jpg"},
	{"lemon rice", vegRecipes + "2014/06/lemon-rice-recipe-1.jpg"},
	{"biryani", healthyRecipes + "2022/02/vegetable-biryani-recipe.jpg"},
	{"pulao", vegRecipes + "2017/12/veg-pulao-recipe-1.jpg"},

	// 豆類
	{"dal tadka", vegRecipes + "2017/12/dal-tadka-recipe-1.jpg"},
	{"dal fry", vegRecipes + "2017/12/dal-fry-recipe-1.jpg"},
	{"moong dal", vegRecipes + "2021/06/moong-dal-recipe-1.jpg"},
	{"toor dal", vegRecipes + "2017/12/dal-tadka-recipe-1.jpg"},
	{"masoor dal", vegRecipes + "2021/06/masoor-dal-recipe-1.jpg"},

	// 馬鈴薯
	{"aloo sabzi", vegRecipes + "2014/11/aloo-sabzi-recipe-1.jpg"},
	{"aloo curry", vegRecipes + "2014/11/aloo-sabzi-recipe-1.jpg"},
	{"aloo gobi", vegRecipes + "2014/11/aloo-gobi-recipe-1.jpg"},
	{"aloo paratha", vegRecipes + "2019/01/aloo-paratha-recipe-1.jpg"},
	{"potato curry", vegRecipes + "2014/11/aloo-sabzi-recipe-1.jpg"},

	// 起司
	{"paneer bhurji", vegRecipes + "2020/01/paneer-bhurji-recipe-1.jpg"},
	{"paneer curry", vegRecipes + "2020/01/paneer-curry-recipe-1.jpg"},
	{"paneer tikka", vegRecipes + "2020/01/paneer-tikka-recipe-1.jpg"},
	{"palak paneer", vegRecipes + "2020/01/palak-paneer-recipe-1.jpg"},

	// 蛋
	{"masala omelette", healthyRecipes + "2022/06/masala-omelette-recipe.jpg"},
	{"egg curry", healthyRecipes + "2022/06/egg-curry-recipe.jpg"},
	{"scrambled eggs", healthyRecipes + "2022/06/masala-omelette-recipe.jpg"},

	// 早餐
	{"poha", vegRecipes + "2021/12/poha-recipe-1.jpg"},
	{"upma", vegRecipes + "2022/06/upma-recipe-1.jpg"},
	{"idli", vegRecipes + "2022/04/idli-recipe-1.jpg"},
	{"dosa", vegRecipes + "2021/07/masala-dosa-1.jpg"},
	{"bread upma", vegRecipes + "2022/06/bread-upma-recipe-1.jpg"},

	// 飲品
	{"masala chai", vegRecipes + "2022/03/masala-chai-recipe-1.jpg"},
	{"ginger tea", vegRecipes + "2022/03/ginger-tea-recipe-1.jpg"},
	{"chai", vegRecipes + "2022/03/masala-chai-recipe-1.jpg"},

	// 蔬菜
	{"mixed vegetables", vegRecipes + "2020/01/mixed-vegetable-curry-1.jpg"},
	{"vegetable curry", vegRecipes + "2020/01/mixed-vegetable-curry-1.jpg"},
	{"cabbage sabzi", vegRecipes + "2014/11/cabbage-sabzi-recipe-1.jpg"},
	{"cauliflower curry", vegRecipes + "2014/11/aloo-gobi-recipe-1.jpg"},

	// 餅
	{"roti", vegRecipes + "2022/03/chapati-recipe-1.jpg"},
	{"chapati", vegRecipes + "2022/03/chapati-recipe-1.jpg"},
	{"paratha", vegRecipes + "2019/01/aloo-paratha-recipe-1.jpg"},
	{"naan", vegRecipes + "2022/05/naan-recipe-1.jpg"},

	// 點心
	{"samosa", vegRecipes + "2019/11/samosa-recipe-1.jpg"},
	{"pakora", vegRecipes + "2022/06/pakora-recipe-1.jpg"},
	{"onion pakora", vegRecipes + "2022/06/onion-pakora-recipe-1.jpg"},

	// 甜點
	{"kheer", vegRecipes + "2014/09/rice-kheer-recipe-1.jpg"},
	{"rice pudding", vegRecipes + "2014/09/rice-kheer-recipe-1.jpg"},
	{"halwa", vegRecipes + "2022/03/suji-halwa-recipe-1.jpg"},
}
